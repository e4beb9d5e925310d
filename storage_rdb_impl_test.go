package invindex

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
)

// NewTestDBClient connects to the MySQL named by INVINDEX_TEST_MYSQL_ADDR
// (host:port) and skips the test when it is not set.
func NewTestDBClient(t *testing.T) *sqlx.DB {
	t.Helper()
	addr := os.Getenv("INVINDEX_TEST_MYSQL_ADDR")
	if addr == "" {
		t.Skip("INVINDEX_TEST_MYSQL_ADDR not set")
	}
	host, port := addr, "3306"
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			host, port = addr[:i], addr[i+1:]
			break
		}
	}
	config := NewDBConfig("root", os.Getenv("INVINDEX_TEST_MYSQL_PASSWORD"), host, port, "invindex")
	db, err := NewDBClient(config)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func truncateTableAll(db *sqlx.DB) {
	db.Exec("truncate table indexes")
	db.Exec("truncate table inverted_indexes")
}

func TestDBConfigDSN(t *testing.T) {
	config := NewDBConfig("root", "password", "127.0.0.1", "3306", "invindex")
	if got := config.DSN(); got != "root:password@tcp(127.0.0.1:3306)/invindex" {
		t.Errorf("DSN() = %q", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	m := sampleMapping()
	encoded, err := encode("sample", m)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded) != len(m) {
		t.Fatalf("expected %d rows, got %d", len(m), len(encoded))
	}
	for _, e := range encoded {
		if e.IndexName != "sample" {
			t.Errorf("IndexName = %q", e.IndexName)
		}
	}
	decoded, err := decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(decoded, m); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestStorageRdbImplDumpLoad(t *testing.T) {
	db := NewTestDBClient(t)
	storage := NewStorageRdbImpl(db)
	if err := storage.Migrate(); err != nil {
		t.Fatal(err)
	}
	truncateTableAll(db)

	cases := []struct {
		name    string
		mapping Mapping
	}{
		{name: "sample", mapping: sampleMapping()},
		{name: "replaced", mapping: Mapping{"hello": {1, 2}, "world": {2}}},
		{name: "replaced", mapping: Mapping{"only": {70000}}},
		{name: "empty", mapping: Mapping{}},
	}
	for _, tt := range cases {
		if err := storage.Dump(tt.mapping, tt.name); err != nil {
			t.Fatal(err)
		}
		got, err := storage.Load(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(got, tt.mapping); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	}
}

func TestStorageRdbImplLoadUnknownIndex(t *testing.T) {
	db := NewTestDBClient(t)
	storage := NewStorageRdbImpl(db)
	if err := storage.Migrate(); err != nil {
		t.Fatal(err)
	}
	truncateTableAll(db)

	_, err := storage.Load("missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
