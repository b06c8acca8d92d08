package runname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhpc/testview/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       model.TestConfiguration
	}{
		{
			name:       "confluent gnu default",
			identifier: "3.4-almalinux9-confluent-ethernet-gpu-none-x86_64-slurm",
			want: model.TestConfiguration{
				Distribution: "almalinux9",
				Provisioner:  "confluent",
				Network:      "ethernet",
				Compiler:     "GNU",
				GPU:          "none",
				Architecture: "x86_64",
				RMS:          "slurm",
			},
		},
		{
			name:       "warewulf intel",
			identifier: "3.4-almalinux9-warewulf4-ethernet-INTEL-gpu-none-x86_64-slurm",
			want: model.TestConfiguration{
				Distribution: "almalinux9",
				Provisioner:  "warewulf4",
				Network:      "ethernet",
				Compiler:     "INTEL",
				GPU:          "none",
				Architecture: "x86_64",
				RMS:          "slurm",
			},
		},
		{
			name:       "openEuler infiniband openpbs",
			identifier: "3.3-openEuler_22.03-openchami-infiniband-gnu14-gpu-nvidia-aarch64-openpbs",
			want: model.TestConfiguration{
				Distribution: "openEuler_22.03",
				Provisioner:  "openchami",
				Network:      "infiniband",
				Compiler:     "GNU",
				GPU:          "nvidia",
				Architecture: "aarch64",
				RMS:          "openpbs",
			},
		},
		{
			name:       "leap keeps original casing",
			identifier: "leap15.5-Warewulf-Slurm",
			want: model.TestConfiguration{
				Distribution: "leap15.5",
				Provisioner:  "Warewulf",
				Network:      "ethernet",
				Compiler:     "GNU",
				RMS:          "Slurm",
			},
		},
		{
			name:       "empty identifier",
			identifier: "",
			want:       model.TestConfiguration{Network: "ethernet", Compiler: "GNU"},
		},
		{
			name:       "unrecognised tokens",
			identifier: "foo-bar-baz",
			want:       model.TestConfiguration{Network: "ethernet", Compiler: "GNU"},
		},
		{
			name:       "intel substring without token",
			identifier: "rocky9-INTELmpi-slurm",
			want: model.TestConfiguration{
				Distribution: "rocky9",
				Network:      "ethernet",
				Compiler:     "INTEL",
				RMS:          "slurm",
			},
		},
		{
			name:       "trailing gpu has no type",
			identifier: "rocky9-gpu",
			want: model.TestConfiguration{
				Distribution: "rocky9",
				Network:      "ethernet",
				Compiler:     "GNU",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.identifier))
		})
	}
}

func TestParse_GPULookaheadConsumesToken(t *testing.T) {
	config := Parse("a-gpu-none-b")
	assert.Equal(t, "none", config.GPU)

	// The consumed token is not classified again
	config = Parse("rocky9-gpu-slurm-x86_64")
	assert.Equal(t, "slurm", config.GPU)
	assert.Empty(t, config.RMS)
	assert.Equal(t, "x86_64", config.Architecture)
}

func TestParse_DefaultsAlwaysSet(t *testing.T) {
	identifiers := []string{
		"",
		"-",
		"---",
		"gpu",
		"INTEL",
		"intel",
		"gnu12",
		"GNU",
		"infiniband",
		"3.4-almalinux9-confluent-ethernet-gpu-none-x86_64-slurm",
		"2024-01-15-14-30-45-PASS-rocky9",
		"random text with spaces",
	}

	for _, id := range identifiers {
		config := Parse(id)
		require.Contains(t, []string{"INTEL", "GNU"}, config.Compiler, id)
		require.Contains(t, []string{"ethernet", "infiniband"}, config.Network, id)
	}
}

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"2024-01-15-14-30-45-PASS-almalinux9", "2024-01-15-14-30-45"},
		{"3.4-almalinux9-2024-01-15-14-30-45", "2024-01-15-14-30-45"},
		{"3.4-almalinux9-confluent", ""},
		{"2024-01-15-14-30", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTimestamp(tt.identifier))
		})
	}
}
