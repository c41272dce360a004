// metrics — счётчики Prometheus сервиса orastria.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BooksGenerated — успешно сгенерированные и выгруженные книги.
	BooksGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orastria_books_generated_total",
		Help: "Total number of books generated and uploaded.",
	})

	// ChartRequests — запросы расчёта карты (оба маршрута), по результату.
	ChartRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orastria_chart_requests_total",
		Help: "Total number of natal chart resolutions by result.",
	}, []string{"result"})

	// UpstreamErrors — сбои внешних сервисов по имени апстрима.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orastria_upstream_errors_total",
		Help: "Total number of upstream call failures by upstream name.",
	}, []string{"upstream"})
)
