package datarecording

import (
	"database/sql"
	"fmt"
	"reflect"
)

// QueryParams narrows and paginates a query.
type QueryParams struct {
	// Where holds the WHERE clause without the "WHERE" keyword, with "?"
	// placeholders filled from Args.
	Where string
	Args  []any

	// OrderBy specifies sorting, without the "ORDER BY" keywords.
	OrderBy string

	// Limit is the maximum number of records to return. 0 means no limit.
	Limit  int
	Offset int
}

// DataReader reads recorded data back from a database.
type DataReader interface {
	// MapTable establishes the mapping between a table and a struct type.
	// A table must be mapped before it can be queried.
	MapTable(tableName string, sampleEntry any)

	// Query returns the entries of a table as pointers to structs of the
	// mapped type, along with the total number of matching records.
	Query(tableName string, params QueryParams) ([]any, int, error)

	// Close closes the reader.
	Close() error
}

// NewDataReader opens a DataReader over a SQLite database file.
func NewDataReader(filename string) DataReader {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	return NewDataReaderWithDB(db)
}

// NewDataReaderWithDB creates a DataReader over an already-opened database.
func NewDataReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

type sqliteReader struct {
	db *sql.DB

	typeMap map[string]reflect.Type
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) Query(
	tableName string,
	params QueryParams,
) ([]any, int, error) {
	structType, ok := r.typeMap[tableName]
	if !ok {
		return nil, 0, fmt.Errorf("no mapping found for table %s", tableName)
	}

	totalCount, err := r.queryTotalCount(tableName, params)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}
	if params.OrderBy != "" {
		query += " ORDER BY " + params.OrderBy
	}
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", params.Limit)
		if params.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", params.Offset)
		}
	}

	rows, err := r.db.Query(query, params.Args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results, err := scanRows(rows, structType)
	if err != nil {
		return nil, 0, err
	}

	return results, totalCount, nil
}

func (r *sqliteReader) queryTotalCount(
	tableName string,
	params QueryParams,
) (int, error) {
	query := "SELECT COUNT(*) FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}

	var totalCount int
	err := r.db.QueryRow(query, params.Args...).Scan(&totalCount)
	if err != nil {
		return 0, err
	}

	return totalCount, nil
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows, structType reflect.Type) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	fieldIndex := make(map[string]int)
	for i := 0; i < structType.NumField(); i++ {
		fieldIndex[structType.Field(i).Name] = i
	}

	var results []any
	for rows.Next() {
		entryPtr := reflect.New(structType)
		entry := entryPtr.Elem()

		targets := make([]any, len(columns))
		for i, column := range columns {
			if fieldIdx, ok := fieldIndex[column]; ok {
				targets[i] = entry.Field(fieldIdx).Addr().Interface()
			} else {
				var discard any
				targets[i] = &discard
			}
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		results = append(results, entryPtr.Interface())
	}

	return results, rows.Err()
}
