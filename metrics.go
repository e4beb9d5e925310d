package invindex

import "github.com/rcrowley/go-metrics"

var (
	buildTimer = metrics.NewRegisteredTimer("index.build", nil)
	dumpTimer  = metrics.NewRegisteredTimer("index.dump", nil)
	loadTimer  = metrics.NewRegisteredTimer("index.load", nil)
	queryTimer = metrics.NewRegisteredTimer("index.query", nil)

	indexedDocuments = metrics.NewRegisteredCounter("index.documents", nil)
	postingListSizes = metrics.NewRegisteredHistogram("index.posting_list_size", nil, metrics.NewUniformSample(512))
)
