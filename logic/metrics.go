package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks forget/logic IMetrics,IRequestObserver

type IMetrics interface {
	ServiceStarted()
	StartSync(service string) IRequestObserver
	StartDeleteBatch(service string) IRequestObserver
	PostsMerged(count int)
	PostsDeleted(count int)
	TokenPurged(service string)
	ProviderError(service, kind string)
	AccountCount(count int)
	DbFileSize(size int64)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	serviceStarted prometheus.Counter
	syncDuration   *prometheus.HistogramVec
	deleteDuration *prometheus.HistogramVec
	postsMerged    prometheus.Counter
	postsDeleted   prometheus.Counter
	tokensPurged   *prometheus.CounterVec
	providerErrors *prometheus.CounterVec
	accountCount   prometheus.Gauge
	dbFileSize     prometheus.Gauge
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.syncDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "sync_duration",
		Help: "Duration in seconds of one account sync call.",
	}, []string{"service"})
	prometheus.Register(res.syncDuration)

	res.deleteDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "delete_batch_duration",
		Help: "Duration in seconds of one delete-batch call.",
	}, []string{"service"})
	prometheus.Register(res.deleteDuration)

	res.postsMerged = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_merged",
		Help: "Number of posts merged from providers",
	})
	prometheus.Register(res.postsMerged)

	res.postsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_deleted",
		Help: "Number of posts deleted at providers",
	})
	prometheus.Register(res.postsDeleted)

	res.tokensPurged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tokens_purged",
		Help: "Number of revoked credentials purged",
	}, []string{"service"})
	prometheus.Register(res.tokensPurged)

	res.providerErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_errors",
		Help: "Number of classified provider errors",
	}, []string{"service", "kind"})
	prometheus.Register(res.providerErrors)

	res.accountCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "account_count",
		Help: "Number of known accounts",
	})
	prometheus.Register(res.accountCount)

	res.dbFileSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_file_size",
		Help: "Size of the SQLite DB file on disk",
	})
	prometheus.Register(res.dbFileSize)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) StartSync(service string) IRequestObserver {
	return &requestObserver{service, time.Now(), m.syncDuration}
}

func (m *metrics) StartDeleteBatch(service string) IRequestObserver {
	return &requestObserver{service, time.Now(), m.deleteDuration}
}

func (m *metrics) PostsMerged(count int) {
	m.postsMerged.Add(float64(count))
}

func (m *metrics) PostsDeleted(count int) {
	m.postsDeleted.Add(float64(count))
}

func (m *metrics) TokenPurged(service string) {
	m.tokensPurged.WithLabelValues(service).Add(1)
}

func (m *metrics) ProviderError(service, kind string) {
	m.providerErrors.WithLabelValues(service, kind).Add(1)
}

func (m *metrics) AccountCount(count int) {
	m.accountCount.Set(float64(count))
}

func (m *metrics) DbFileSize(size int64) {
	m.dbFileSize.Set(float64(size))
}
