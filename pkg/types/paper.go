// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperType categorizes what kind of contribution a paper makes.
// The set mirrors the extraction prompt's enumeration; values outside
// the set are pushed into Tags by the extraction prompt contract.
type PaperType string

const (
	PaperAttack      PaperType = "攻击"
	PaperDefense     PaperType = "防御"
	PaperMeasurement PaperType = "测量/评测"
	PaperBenchmark   PaperType = "基准/数据集"
	PaperSurvey      PaperType = "综述/调研"
	PaperMethodology PaperType = "方法学/工具"
	PaperOther       PaperType = "其他"
)

// ThreatModel identifies the traffic setting a paper targets.
type ThreatModel string

const (
	ThreatTor   ThreatModel = "Tor"
	ThreatVPN   ThreatModel = "VPN"
	ThreatTLS   ThreatModel = "TLS/HTTPS"
	ThreatOther ThreatModel = "其他"
)

// Links holds optional external URLs for a paper. Every value is either
// empty or an absolute http(s) URL; the schema validator enforces this.
type Links struct {
	PDF     string `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
	Dataset string `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Project string `json:"project,omitempty" yaml:"project,omitempty"`
}

// Paper is one structured record for a website-fingerprinting paper.
// A validated Paper has every optional field materialized: missing arrays
// become empty slices and missing strings become "" so downstream
// consumers never need their own defaulting.
type Paper struct {
	// ID is a short stable identifier, by convention first-author/year/keyword
	// (e.g. "sirinam2018-df"). Unique within a collection.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Venue is the conference or journal (e.g. "NDSS", "USENIX Security").
	Venue string `json:"venue" yaml:"venue"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// PaperType is the contribution category; empty when unclassified.
	PaperType string `json:"paper_type" yaml:"paper_type"`

	// ThreatModel is the traffic setting; empty when unclassified.
	ThreatModel string `json:"threat_model" yaml:"threat_model"`

	Keywords  []string `json:"keywords" yaml:"keywords"`
	Subfields []string `json:"subfields" yaml:"subfields"`
	Tasks     []string `json:"tasks" yaml:"tasks"`
	Features  []string `json:"features" yaml:"features"`
	Models    []string `json:"models" yaml:"models"`
	Datasets  []string `json:"datasets" yaml:"datasets"`
	Metrics   []string `json:"metrics" yaml:"metrics"`

	// Summary is a short abstract of method and contribution. Required.
	Summary string `json:"summary" yaml:"summary"`

	// Findings holds the core experimental conclusions.
	Findings string `json:"findings" yaml:"findings"`

	// Limitations holds the main shortcomings.
	Limitations string `json:"limitations" yaml:"limitations"`

	// FutureWork holds potential directions for improvement.
	FutureWork string `json:"future_work" yaml:"future_work"`

	// Tags are free-form labels used for faceted filtering.
	Tags []string `json:"tags" yaml:"tags"`

	// Links holds optional external URLs.
	Links Links `json:"links" yaml:"links"`
}
