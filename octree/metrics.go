package octree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	treeLabel = "tree"
)

var (
	dualgridCellCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dualgrid_cell_count",
		Help: "The number of cells per tree.",
	}, []string{treeLabel})

	dualgridVertexCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dualgrid_vertex_count",
		Help: "The number of vertices per tree.",
	}, []string{treeLabel})

	dualgridCellsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dualgrid_cells_created_total",
		Help: "The total number of cells created.",
	}, []string{treeLabel})

	dualgridVerticesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dualgrid_vertices_created_total",
		Help: "The total number of vertices created.",
	}, []string{treeLabel})

	dualgridSubdivisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dualgrid_subdivisions_total",
		Help: "The total number of cell splits.",
	}, []string{treeLabel})
)

func instrumentCellCreated(treeUUID string, cellCount int) {
	dualgridCellCount.
		With(prometheus.Labels{treeLabel: treeUUID}).
		Set(float64(cellCount))
	dualgridCellsCreatedTotal.
		With(prometheus.Labels{treeLabel: treeUUID}).
		Inc()
}

func instrumentVertexCreated(treeUUID string, vertexCount int) {
	dualgridVertexCount.
		With(prometheus.Labels{treeLabel: treeUUID}).
		Set(float64(vertexCount))
	dualgridVerticesCreatedTotal.
		With(prometheus.Labels{treeLabel: treeUUID}).
		Inc()
}

func instrumentSubdivision(treeUUID string) {
	dualgridSubdivisionsTotal.
		With(prometheus.Labels{treeLabel: treeUUID}).
		Inc()
}
