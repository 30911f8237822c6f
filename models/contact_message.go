package models

import (
	"database/sql"
	"time"
)

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Locale    string    `json:"locale"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageModel struct {
	DB *sql.DB
}

func NewContactMessageModel(db *sql.DB) *ContactMessageModel {
	return &ContactMessageModel{DB: db}
}

func (m *ContactMessageModel) Create(name, email, subject, message, locale string) (*ContactMessage, error) {
	cm := &ContactMessage{}

	query := `
		INSERT INTO contact_messages (name, email, subject, message, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, subject, message, locale, read, created_at
	`
	var subj sql.NullString
	err := m.DB.QueryRow(query, name, email, nullable(subject), message, locale, time.Now()).Scan(
		&cm.ID, &cm.Name, &cm.Email, &subj, &cm.Message, &cm.Locale, &cm.Read, &cm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if subj.Valid {
		cm.Subject = subj.String
	}
	return cm, nil
}

func (m *ContactMessageModel) List(limit, offset int) ([]ContactMessage, error) {
	messages := []ContactMessage{}
	query := `
		SELECT id, name, email, subject, message, locale, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := m.DB.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cm ContactMessage
		var subj sql.NullString
		err := rows.Scan(&cm.ID, &cm.Name, &cm.Email, &subj, &cm.Message, &cm.Locale, &cm.Read, &cm.CreatedAt)
		if err != nil {
			return nil, err
		}
		if subj.Valid {
			cm.Subject = subj.String
		}
		messages = append(messages, cm)
	}
	return messages, rows.Err()
}

func (m *ContactMessageModel) Count() (int, error) {
	var count int
	err := m.DB.QueryRow("SELECT COUNT(*) FROM contact_messages").Scan(&count)
	return count, err
}

func (m *ContactMessageModel) MarkRead(id int) error {
	_, err := m.DB.Exec("UPDATE contact_messages SET read = TRUE WHERE id = $1", id)
	return err
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
