package db

// scanPerson scans a row into a PersonRow. The row must have all 5
// columns in standard order.
func scanPerson(scanner interface{ Scan(dest ...any) error }) (PersonRow, error) {
	var p PersonRow
	err := scanner.Scan(&p.ID, &p.FirstName, &p.MiddleName, &p.LastName, &p.Gender)
	return p, err
}

// InsertPerson adds a row to the people table. Re-inserting an existing
// id is a no-op so the write stays idempotent, matching the graph-side
// create-or-find semantics.
func (d *DB) InsertPerson(p PersonRow) error {
	_, err := d.conn.Exec(`
		INSERT INTO people (id, first_name, middle_name, last_name, gender)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, p.ID, p.FirstName, p.MiddleName, p.LastName, p.Gender)
	return err
}

// GetPerson returns a single person by ID.
func (d *DB) GetPerson(id string) (*PersonRow, error) {
	row := d.conn.QueryRow(`
		SELECT id, first_name, middle_name, last_name, gender
		FROM people WHERE id = ?
	`, id)

	p, err := scanPerson(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AllPeople returns every person ordered by last name then first name.
func (d *DB) AllPeople() ([]PersonRow, error) {
	rows, err := d.conn.Query(`
		SELECT id, first_name, middle_name, last_name, gender
		FROM people ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []PersonRow
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}
