// Package router answers "how do I get from stop A to stop B" queries
// over a transit-with-wait model: a traveler waits BusWaitTime minutes
// at a stop before boarding, then rides a bus at BusVelocity km/h for
// any number of consecutive spans without paying the wait again, as
// long as they stay on the same bus.
//
// This is modeled as two vertices per stop (an "at the stop" vertex and
// an "on a bus departing the stop" vertex) joined by a wait edge, with
// one bus edge per reachable downstream stop on each route. Shortest
// path is plain Dijkstra over container/heap; there is deliberately no
// external graph library here, since the graph has exactly this one
// fixed edge shape.
package router

import (
	"container/heap"
	"math"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/models"
)

const kmhToMPerMin = 1000.0 / 60.0

// edgeKind distinguishes the two edge shapes of the graph.
type edgeKind int

const (
	edgeWait edgeKind = iota
	edgeBus
)

type edge struct {
	to        int
	weight    float64
	kind      edgeKind
	busName   string
	spanCount int
}

// Router is an immutable snapshot of the routing graph, built once from
// a Catalogue and reused for every subsequent FindRoute call.
type Router struct {
	stopVertex map[int]int    // models.Stop.ID -> "at stop" vertex id (2k)
	vertexStop []int          // vertex id -> models.Stop.ID, for both 2k and 2k+1
	stopName   map[int]string // models.Stop.ID -> name
	adj        [][]edge
	settings   models.RoutingSettings
}

// Build constructs the routing graph for every route in cat.
func Build(cat *catalogue.Catalogue, settings models.RoutingSettings) *Router {
	r := &Router{
		stopVertex: make(map[int]int),
		stopName:   make(map[int]string),
		settings:   settings,
	}

	for _, stop := range cat.Stops() {
		atStop := len(r.vertexStop)
		r.stopVertex[stop.ID] = atStop
		r.vertexStop = append(r.vertexStop, stop.ID, stop.ID)
		r.stopName[stop.ID] = stop.Name
	}
	r.adj = make([][]edge, len(r.vertexStop))

	for _, stop := range cat.Stops() {
		atStop := r.stopVertex[stop.ID]
		onBus := atStop + 1
		r.addEdge(atStop, onBus, settings.BusWaitTime, edgeWait, "", 0)
	}

	for _, route := range cat.Routes() {
		r.addRouteEdges(cat, route, settings)
	}

	return r
}

func (r *Router) addEdge(from, to int, weight float64, kind edgeKind, busName string, span int) {
	r.adj[from] = append(r.adj[from], edge{to: to, weight: weight, kind: kind, busName: busName, spanCount: span})
}

// addRouteEdges adds one bus edge from each stop's "on bus" vertex to
// every downstream stop's "at stop" vertex, for every i<j pair in the
// route's expanded stop sequence.
func (r *Router) addRouteEdges(cat *catalogue.Catalogue, route *models.Route, settings models.RoutingSettings) {
	stops := route.Stops
	for i := 0; i < len(stops); i++ {
		dist := 0.0
		for j := i + 1; j < len(stops); j++ {
			dist += cat.Distance(stops[j-1], stops[j])
			travelTime := dist / (settings.BusVelocity * kmhToMPerMin)

			from := r.stopVertex[stops[i].ID] + 1 // "on bus departing stops[i]"
			to := r.stopVertex[stops[j].ID]        // "at stops[j]"
			r.addEdge(from, to, travelTime, edgeBus, route.Name, j-i)
		}
	}
}

// FindRoute returns the fastest itinerary from fromStop to toStop, or
// ok == false if no path exists.
func (r *Router) FindRoute(fromStop, toStop *models.Stop) (models.Itinerary, bool) {
	fromV, ok1 := r.stopVertex[fromStop.ID]
	toV, ok2 := r.stopVertex[toStop.ID]
	if !ok1 || !ok2 {
		return models.Itinerary{}, false
	}
	if fromStop.ID == toStop.ID {
		return models.Itinerary{TotalTime: 0, Items: nil}, true
	}

	dist, prevVertex, prevEdge := r.dijkstra(fromV)
	if math.IsInf(dist[toV], 1) {
		return models.Itinerary{}, false
	}

	items := r.reconstruct(fromV, toV, prevVertex, prevEdge)
	return models.Itinerary{TotalTime: dist[toV], Items: items}, true
}

type pqEntry struct {
	vertex int
	dist   float64
	index  int
}

type priorityQueue []*pqEntry

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index = i; pq[j].index = j }
func (pq *priorityQueue) Push(x interface{}) {
	e := x.(*pqEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

func (r *Router) dijkstra(source int) (dist []float64, prevVertex []int, prevEdge []*edge) {
	n := len(r.adj)
	dist = make([]float64, n)
	prevVertex = make([]int, n)
	prevEdge = make([]*edge, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevVertex[i] = -1
	}
	dist[source] = 0

	pq := &priorityQueue{{vertex: source, dist: 0}}
	heap.Init(pq)

	visited := make([]bool, n)
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqEntry)
		if visited[cur.vertex] {
			continue
		}
		visited[cur.vertex] = true

		for i := range r.adj[cur.vertex] {
			e := &r.adj[cur.vertex][i]
			nd := dist[cur.vertex] + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				prevVertex[e.to] = cur.vertex
				prevEdge[e.to] = e
				heap.Push(pq, &pqEntry{vertex: e.to, dist: nd})
			}
		}
	}

	return dist, prevVertex, prevEdge
}

// reconstruct walks prevVertex/prevEdge backward from toV to fromV and
// turns the raw edge path into the alternating Wait/Bus items an
// Itinerary reports.
func (r *Router) reconstruct(fromV, toV int, prevVertex []int, prevEdge []*edge) []models.Item {
	var rev []models.Item
	for v := toV; v != fromV; {
		e := prevEdge[v]
		switch e.kind {
		case edgeWait:
			rev = append(rev, models.Item{
				Kind:     models.ItemWait,
				StopName: r.nameOfVertex(v),
				Time:     e.weight,
			})
		case edgeBus:
			rev = append(rev, models.Item{
				Kind:      models.ItemBus,
				BusName:   e.busName,
				SpanCount: e.spanCount,
				Time:      e.weight,
			})
		}
		v = prevVertex[v]
	}

	items := make([]models.Item, len(rev))
	for i, it := range rev {
		items[len(rev)-1-i] = it
	}
	return items
}

func (r *Router) nameOfVertex(vertex int) string {
	return r.stopName[r.vertexStop[vertex]]
}
