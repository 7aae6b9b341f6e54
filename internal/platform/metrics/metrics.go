package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricPrefix = "shelfmarket_"

// Counters for the business operations the shop cares about. Registered on
// the default registry; exposed via the /metrics endpoint.
var (
	LeaseAgreementsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "lease_agreements_created_total",
		Help: "Lease agreements successfully created",
	})

	SalesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "sales_recorded_total",
		Help: "Sales successfully recorded",
	})

	SettlementsRun = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "settlements_run_total",
		Help: "Settlement runs, partitioned by whether the result was persisted",
	}, []string{"persisted"})
)
