package db

// scanSource scans a row into a SourceRow. The row must have all 6
// columns in standard order.
func scanSource(scanner interface{ Scan(dest ...any) error }) (SourceRow, error) {
	var s SourceRow
	err := scanner.Scan(&s.ID, &s.Type, &s.Authority, &s.Author, &s.Title, &s.Created)
	return s, err
}

// InsertSource adds a row to the source table. Re-inserting an existing
// id is a no-op.
func (d *DB) InsertSource(s SourceRow) error {
	_, err := d.conn.Exec(`
		INSERT INTO source (id, type, authority, author, title, created)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, s.ID, s.Type, s.Authority, s.Author, s.Title, s.Created)
	return err
}

// GetSource returns a single source by ID.
func (d *DB) GetSource(id string) (*SourceRow, error) {
	row := d.conn.QueryRow(`
		SELECT id, type, authority, author, title, created
		FROM source WHERE id = ?
	`, id)

	s, err := scanSource(row)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AllSources returns every source ordered by creation date descending.
func (d *DB) AllSources() ([]SourceRow, error) {
	rows, err := d.conn.Query(`
		SELECT id, type, authority, author, title, created
		FROM source ORDER BY created DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []SourceRow
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}
