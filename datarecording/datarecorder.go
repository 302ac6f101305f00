// Package datarecording writes simulation data into SQLite databases.
// Tables are derived from plain structs: field names become columns, and
// entries are buffered in memory and flushed in batched transactions.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Registers the SQLite driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data.
type DataRecorder interface {
	// CreateTable creates a new table using the fields of the sample entry
	// as columns.
	CreateTable(tableName string, sampleEntry any)

	// InsertData writes one entry into a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all the created tables.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush()

	// Close flushes and closes the database.
	Close()
}

// NewDataRecorder creates a DataRecorder backed by a SQLite database at
// path (without the ".sqlite3" extension). An empty path picks a unique
// name.
func NewDataRecorder(path string) DataRecorder {
	if path == "" {
		path = "uartsim_data_" + xid.New().String()
	}

	filename := path + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	return NewDataRecorderWithDB(db)
}

// NewDataRecorderWithDB creates a DataRecorder over an already-opened
// database.
func NewDataRecorderWithDB(db *sql.DB) DataRecorder {
	w := &sqliteWriter{
		db:        db,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

type sqliteWriter struct {
	db *sql.DB

	tables     map[string]*table
	batchSize  int
	entryCount int
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	entryMustBeFlat(sampleEntry)

	fields := structs.Names(sampleEntry)
	createStmt := "CREATE TABLE " + tableName +
		" (\n\t" + strings.Join(fields, ",\n\t") + "\n);"
	w.mustExecute(createStmt)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		panic(fmt.Sprintf("entry type mismatch for table %s", tableName))
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

func (w *sqliteWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range w.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt := w.prepareInsert(tableName, t.entries[0])

		for _, entry := range t.entries {
			v := reflect.ValueOf(entry)
			args := make([]any, 0, v.NumField())
			for i := 0; i < v.NumField(); i++ {
				args = append(args, v.Field(i).Interface())
			}

			if _, err := stmt.Exec(args...); err != nil {
				panic(err)
			}
		}

		t.entries = nil
		stmt.Close()
	}

	w.entryCount = 0
}

func (w *sqliteWriter) Close() {
	w.Flush()

	if err := w.db.Close(); err != nil {
		panic(err)
	}
}

func (w *sqliteWriter) prepareInsert(tableName string, sample any) *sql.Stmt {
	placeholders := structs.Names(sample)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.db.Prepare("INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}

	return stmt
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.db.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func entryMustBeFlat(entry any) {
	t := reflect.TypeOf(entry)

	for i := 0; i < t.NumField(); i++ {
		switch t.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
		default:
			panic(fmt.Sprintf(
				"field %s is not a scalar; entries must be flat structs",
				t.Field(i).Name))
		}
	}
}
