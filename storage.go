package invindex

//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=invindex

// Storage persists a Mapping. An implementation is configured when it is
// constructed and does not change afterwards.
type Storage interface {
	Dump(Mapping, string) error   // マッピングを書き出す。既存のものは置き換える
	Load(string) (Mapping, error) // 書き出されたマッピングを読み込む
}
