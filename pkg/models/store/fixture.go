package store

type ResourceName string

const (
	ResourceOverview     ResourceName = "overview"
	ResourcePopulation   ResourceName = "population"
	ResourceBehaviour    ResourceName = "behaviour"
	ResourceRisk         ResourceName = "risk"
	ResourceTiming       ResourceName = "timing"
	ResourceMonetisation ResourceName = "monetisation"
	ResourceOutreach     ResourceName = "outreach"
	ResourceDataQuality  ResourceName = "data_quality"
)

// Resource is one JSON document written by the batch job.
type Resource struct {
	Name     ResourceName
	File     string
	Required bool
}

// Manifest lists every document fetched at startup.
var Manifest = []Resource{
	{Name: ResourceOverview, File: "overview.json", Required: true},
	{Name: ResourcePopulation, File: "population.json", Required: true},
	{Name: ResourceBehaviour, File: "behaviour.json", Required: true},
	{Name: ResourceRisk, File: "risk.json", Required: true},
	{Name: ResourceTiming, File: "timing.json", Required: true},
	{Name: ResourceMonetisation, File: "monetisation.json", Required: true},
	{Name: ResourceOutreach, File: "outreach.json", Required: true},
	{Name: ResourceDataQuality, File: "data_quality.json", Required: false},
}
