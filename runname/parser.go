// Package runname decodes run identifiers such as
// "3.4-almalinux9-warewulf4-ethernet-INTEL-gpu-none-x86_64-slurm" into a
// model.TestConfiguration.
package runname

import (
	"regexp"
	"strings"

	"github.com/openhpc/testview/model"
)

const (
	CompilerGNU   = "GNU"
	CompilerIntel = "INTEL"

	DefaultNetwork = "ethernet"
)

var (
	distributionPattern = regexp.MustCompile(`^(almalinux\d+|rocky\d+|leap\d+\.\d+|openEuler_\d+\.\d+)`)
	gnuTokenPattern     = regexp.MustCompile(`^gnu\d*$`)
	gnuAnywherePattern  = regexp.MustCompile(`(?i)gnu\d+`)
	timestampPattern    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}`)

	provisioners = map[string]bool{
		"confluent": true,
		"warewulf":  true,
		"warewulf4": true,
		"openchami": true,
	}
	networks = map[string]bool{
		"ethernet":   true,
		"infiniband": true,
	}
	architectures = map[string]bool{
		"x86_64":  true,
		"aarch64": true,
	}
	resourceManagers = map[string]bool{
		"slurm":   true,
		"openpbs": true,
	}
)

// Parse decodes identifier into a configuration. It never fails: tokens it
// does not recognise are ignored, and Compiler and Network are always set.
func Parse(identifier string) model.TestConfiguration {
	var config model.TestConfiguration

	parts := strings.Split(identifier, "-")
	for i := 0; i < len(parts); i++ {
		original := parts[i]
		part := strings.ToLower(original)

		switch {
		case distributionPattern.MatchString(original):
			config.Distribution = original
		case provisioners[part]:
			config.Provisioner = original
		case networks[part]:
			config.Network = original
		case part == "intel":
			config.Compiler = CompilerIntel
		case gnuTokenPattern.MatchString(part):
			config.Compiler = CompilerGNU
		case part == "gpu" && i+1 < len(parts):
			// The GPU type is the next token, which is consumed here
			config.GPU = parts[i+1]
			i++
		case architectures[part]:
			config.Architecture = original
		case resourceManagers[part]:
			config.RMS = original
		}
	}

	if config.Compiler == "" {
		config.Compiler = inferCompiler(identifier)
	}
	if config.Network == "" {
		config.Network = DefaultNetwork
	}

	return config
}

// inferCompiler is used when no token named a compiler.
func inferCompiler(identifier string) string {
	switch {
	case strings.Contains(identifier, CompilerIntel):
		return CompilerIntel
	case gnuAnywherePattern.MatchString(identifier):
		return CompilerGNU
	default:
		return CompilerGNU
	}
}

// ExtractTimestamp returns the first YYYY-MM-DD-HH-MM-SS run of identifier,
// or "" when there is none.
func ExtractTimestamp(identifier string) string {
	return timestampPattern.FindString(identifier)
}
