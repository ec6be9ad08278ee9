package metrics

import (
	"net/http"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector publishes dashboard figures as gauges on its own registry
type Collector struct {
	registry      *prometheus.Registry
	cards         *prometheus.GaugeVec
	departments   *prometheus.GaugeVec
	riskLevels    *prometheus.GaugeVec
	notifications prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	cards := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "biomed_equipment_cards",
			Help: "Equipment counted by each dashboard card",
		},
		[]string{"card"},
	)

	departments := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "biomed_equipment_by_department",
			Help: "Equipment count per department",
		},
		[]string{"department"},
	)

	riskLevels := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "biomed_equipment_by_risk_level",
			Help: "Equipment count per current risk band",
		},
		[]string{"level"},
	)

	notifications := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "biomed_pending_notifications",
		Help: "Service-due notifications in the current set",
	})

	registry.MustRegister(cards, departments, riskLevels, notifications)

	return &Collector{
		registry:      registry,
		cards:         cards,
		departments:   departments,
		riskLevels:    riskLevels,
		notifications: notifications,
	}
}

// Observe replaces every gauge with the figures from one regeneration cycle
func (c *Collector) Observe(list []engine.EquipmentWithNextService, dash engine.Dashboard, pending int) {
	c.cards.WithLabelValues("overdue").Set(float64(dash.Stats.Overdue))
	c.cards.WithLabelValues("upcoming").Set(float64(dash.Stats.Upcoming))
	c.cards.WithLabelValues("high_risk").Set(float64(dash.Stats.HighRisk))
	c.cards.WithLabelValues("operational").Set(float64(dash.Stats.Operational))

	c.departments.Reset()
	for dept, n := range dash.Departments {
		c.departments.WithLabelValues(string(dept)).Set(float64(n))
	}

	byLevel := make(map[models.RiskLevel]int, len(models.RiskLevels))
	for _, e := range list {
		byLevel[e.CurrentRisk]++
	}
	for _, level := range models.RiskLevels {
		c.riskLevels.WithLabelValues(string(level)).Set(float64(byLevel[level]))
	}

	c.notifications.Set(float64(pending))
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
