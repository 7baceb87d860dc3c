package db

// SourceRow is a row in the source table. The created column holds the
// ISO date the source record was first entered; it is part of the
// source's identity digest and is never recomputed.
type SourceRow struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Authority string `json:"authority"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Created   string `json:"created"` // ISO date, e.g. "1901-06-02"
}

// PersonRow is a row in the people table. Name parts are optional;
// gender is a single-character code.
type PersonRow struct {
	ID         string  `json:"id"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	Gender     string  `json:"gender"`
}
