package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const createVocabularyEntry = `-- name: CreateVocabularyEntry :one
INSERT INTO vocabulary_entries (id, word, definition, synonyms, translation, mnemonic, saved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, word, definition, synonyms, translation, mnemonic, saved_at
`

type CreateVocabularyEntryParams struct {
	ID          uuid.UUID `json:"id"`
	Word        string    `json:"word"`
	Definition  string    `json:"definition"`
	Synonyms    []string  `json:"synonyms"`
	Translation string    `json:"translation"`
	Mnemonic    string    `json:"mnemonic"`
	SavedAt     time.Time `json:"saved_at"`
}

func (q *Queries) CreateVocabularyEntry(ctx context.Context, arg CreateVocabularyEntryParams) (VocabularyEntry, error) {
	row := q.db.QueryRowContext(ctx, createVocabularyEntry,
		arg.ID,
		arg.Word,
		arg.Definition,
		pq.Array(arg.Synonyms),
		arg.Translation,
		arg.Mnemonic,
		arg.SavedAt,
	)
	var i VocabularyEntry
	err := row.Scan(
		&i.ID,
		&i.Word,
		&i.Definition,
		pq.Array(&i.Synonyms),
		&i.Translation,
		&i.Mnemonic,
		&i.SavedAt,
	)
	return i, err
}

const deleteAllVocabularyEntries = `-- name: DeleteAllVocabularyEntries :exec
DELETE FROM vocabulary_entries
`

func (q *Queries) DeleteAllVocabularyEntries(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllVocabularyEntries)
	return err
}

const deleteVocabularyEntriesByWord = `-- name: DeleteVocabularyEntriesByWord :execrows
DELETE FROM vocabulary_entries WHERE word = $1
`

func (q *Queries) DeleteVocabularyEntriesByWord(ctx context.Context, word string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteVocabularyEntriesByWord, word)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listVocabularyEntries = `-- name: ListVocabularyEntries :many
SELECT id, word, definition, synonyms, translation, mnemonic, saved_at
FROM vocabulary_entries
ORDER BY saved_at, id
`

func (q *Queries) ListVocabularyEntries(ctx context.Context) ([]VocabularyEntry, error) {
	rows, err := q.db.QueryContext(ctx, listVocabularyEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VocabularyEntry
	for rows.Next() {
		var i VocabularyEntry
		if err := rows.Scan(
			&i.ID,
			&i.Word,
			&i.Definition,
			pq.Array(&i.Synonyms),
			&i.Translation,
			&i.Mnemonic,
			&i.SavedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
