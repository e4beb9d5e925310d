package invindex

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const (
	mysqlErrNoSuchTable = 1146
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Password, c.Addr, c.Port, c.DB)
}

// StorageRdbImpl stores mappings in MySQL. The path given to Dump and Load
// names the index, so one database can hold several of them.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

var schema = []string{
	`create table if not exists indexes (
		name varchar(255) not null primary key,
		term_count int unsigned not null
	)`,
	`create table if not exists inverted_indexes (
		index_name varchar(255) not null,
		term varbinary(767) not null,
		posting_list mediumblob not null,
		primary key (index_name, term)
	)`,
}

// Migrate creates the tables if they do not exist yet.
func (s *StorageRdbImpl) Migrate() error {
	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

type EncodedPostingList struct {
	IndexName   string `db:"index_name"`   // インデックス名
	Term        []byte `db:"term"`         // トークン
	PostingList []byte `db:"posting_list"` // トークンを含むポスティングリスト
}

func NewEncodedPostingList(name string, term string, pl []byte) EncodedPostingList {
	return EncodedPostingList{
		IndexName:   name,
		Term:        []byte(term),
		PostingList: pl,
	}
}

// Dump replaces the index called name in a single transaction.
func (s *StorageRdbImpl) Dump(m Mapping, name string) error {
	encoded, err := encode(name, m)
	if err != nil {
		return err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`insert into indexes (name, term_count) values (?, ?)
		on duplicate key update term_count = values(term_count)`, name, len(m)); err != nil {
		return err
	}
	if _, err := tx.Exec(`delete from inverted_indexes where index_name = ?`, name); err != nil {
		return err
	}
	for _, v := range encoded {
		if _, err := tx.NamedExec(
			`insert into inverted_indexes (index_name, term, posting_list)
			values (:index_name, :term, :posting_list)`, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *StorageRdbImpl) Load(name string) (Mapping, error) {
	var termCount int
	if err := s.DB.Get(&termCount, `select term_count from indexes where name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMySQLError(err, mysqlErrNoSuchTable) {
			return nil, fmt.Errorf("index %q: %w", name, fs.ErrNotExist)
		}
		return nil, err
	}

	var encoded []EncodedPostingList
	if err := s.DB.Select(&encoded,
		`select
			index_name,
			term,
			posting_list
		from
			inverted_indexes
		where
			index_name = ?`, name); err != nil {
		return nil, err
	}
	m, err := decode(encoded)
	if err != nil {
		return nil, err
	}
	if len(m) != termCount {
		return nil, fmt.Errorf("%w: index %q has %d terms, expected %d", ErrDecode, name, len(m), termCount)
	}
	return m, nil
}

func encode(name string, m Mapping) ([]EncodedPostingList, error) {
	encoded := make([]EncodedPostingList, 0, len(m))
	for _, term := range m.Terms() {
		pl, err := encodePostingList(m[term])
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, NewEncodedPostingList(name, term, pl))
	}
	return encoded, nil
}

func decode(e []EncodedPostingList) (Mapping, error) {
	m := make(Mapping, len(e))
	for _, encoded := range e {
		pl, err := decodePostingList(encoded.PostingList)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", encoded.Term, err)
		}
		m[string(encoded.Term)] = pl
	}
	return m, nil
}

func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
