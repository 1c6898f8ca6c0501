package model

// AggregateSnapshot holds derived statistics over the outbound subset
// of a transaction set. All sat values; zero denominators yield zero.
type AggregateSnapshot struct {
	TotalOutbound      int64    `json:"totalOutbound"`
	AveragePerDay      float64  `json:"averagePerDay"`
	AveragePerActor    float64  `json:"averagePerActor"`
	LargestOutbound    int64    `json:"largestOutbound"`
	DistinctActorCount int      `json:"distinctActorCount"`
	Actors             []string `json:"actors"`
}
