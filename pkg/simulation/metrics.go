package simulation

// Metrics accumulates run-wide counters. It is only ever written by
// Record, once per cycle.
type Metrics struct {
	Cycles       int
	Arrived      int64
	Served       int64
	QueueSum     int64 // post-service total queue, summed per node per cycle
	Observations int64 // node samples contributing to QueueSum
}

// Record folds one cycle into the totals.
func (m *Metrics) Record(rep *CycleReport) {
	m.Cycles++
	m.Arrived += int64(rep.Arrived)
	m.Served += int64(rep.Served)
	m.QueueSum += int64(rep.QueueSum)
	m.Observations += int64(len(rep.Nodes))
}

// AverageQueue is the mean post-service queue per intersection and cycle.
func (m *Metrics) AverageQueue() float64 {
	if m.Observations == 0 {
		return 0
	}
	return float64(m.QueueSum) / float64(m.Observations)
}

// Throughput is the share of arrived vehicles already served.
func (m *Metrics) Throughput() float64 {
	if m.Arrived == 0 {
		return 0
	}
	return float64(m.Served) / float64(m.Arrived)
}
