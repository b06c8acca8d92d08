package model

// Status is the outcome of a single test run as shown by its status icon.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
	StatusUnknown Status = "unknown"
)

// TestConfiguration is the decoded form of a run identifier.
// Empty fields mean "unknown/unspecified".
type TestConfiguration struct {
	// Distribution with version, e.g. "almalinux9" or "openEuler_22.03"
	Distribution string `json:"distribution" yaml:"distribution"`
	// Provisioning tool, e.g. "confluent" or "warewulf4"
	Provisioner string `json:"provisioner" yaml:"provisioner"`
	// Network fabric, "ethernet" unless the identifier says otherwise
	Network string `json:"network" yaml:"network"`
	// Compiler family, always "GNU" or "INTEL" after parsing
	Compiler string `json:"compiler" yaml:"compiler"`
	// GPU type, the token following "gpu"
	GPU string `json:"gpu" yaml:"gpu"`
	// CPU architecture, "x86_64" or "aarch64"
	Architecture string `json:"architecture" yaml:"architecture"`
	// Resource manager, "slurm" or "openpbs"
	RMS string `json:"rms" yaml:"rms"`
}

// TestRecord is one row of a results table. It is never modified after
// extraction.
type TestRecord struct {
	// Position of the source row in extraction order
	Position int `json:"position" yaml:"position"`
	// Raw run name
	Identifier string `json:"identifier" yaml:"identifier"`
	// Optional reference URL
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
	// Status taken from the status icon
	Status Status `json:"status" yaml:"status"`
	// Configuration decoded from the identifier
	Config TestConfiguration `json:"config" yaml:"config"`
	// YYYY-MM-DD-HH-MM-SS or empty
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	// Number of passed test cases
	PassedCount int `json:"passed" yaml:"passed"`
	// Number of failed test cases
	FailedCount int `json:"failed" yaml:"failed"`
}
