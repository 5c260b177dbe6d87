package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PreordersCreated is a Prometheus counter for tracking the total number of preorders captured.
	PreordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preorders_created_total",
		Help: "The total number of preorders captured",
	})

	// ProductsCreated is a Prometheus counter for tracking the total number of admin-created products.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of admin-created products",
	})

	// FilesUploaded is a Prometheus counter for tracking the total number of uploaded files.
	FilesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "files_uploaded_total",
		Help: "The total number of uploaded files",
	})

	// FilesDeleted is a Prometheus counter for tracking the total number of deleted files.
	FilesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "files_deleted_total",
		Help: "The total number of deleted files",
	})
)
