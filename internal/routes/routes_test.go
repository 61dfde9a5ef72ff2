package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleOutput is a condensed IOS "show ip route" dump covering single-line
// routes, directly connected routes, inherited masks, load balancing, and a
// route split across two lines.
const sampleOutput = `Codes: L - local, C - connected, S - static, R - RIP, M - mobile, B - BGP
       D - EIGRP, EX - EIGRP external, O - OSPF, IA - OSPF inter area

Gateway of last resort is 10.1.1.1 to network 0.0.0.0

S*    0.0.0.0/0 [1/0] via 10.1.1.1
      10.0.0.0/8 is variably subnetted, 4 subnets, 2 masks
C        10.1.1.0/24 is directly connected, GigabitEthernet0/1
L        10.1.1.1/32 is directly connected, GigabitEthernet0/1
D        10.2.0.0/16 [90/156160] via 10.1.1.2, 00:10:15, GigabitEthernet0/1
O        10.3.0.0/16 [110/20] via 10.1.1.3, 00:05:03, GigabitEthernet0/1
O        10.3.0.0/16 [110/20] via 10.1.1.4, 00:05:03, GigabitEthernet0/2
O        10.50.0.0/16
           [110/30] via 10.1.1.3, 00:01:00, GigabitEthernet0/1
      192.168.1.0/24 is subnetted, 2 subnets
D        192.168.1.0 [90/2172416] via 10.1.1.2, 00:10:15, GigabitEthernet0/1
C        192.168.1.128 is directly connected, GigabitEthernet0/2
`

func TestDefaultTemplate_Compiles(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PROTOCOL", "TYPE", "NETWORK", "MASK", "DISTANCE",
		"METRIC", "NEXTHOP_IP", "NEXTHOP_IF", "UPTIME",
	}, tmpl.Header())
}

func TestParse_SampleOutput(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	parsed := Parse(tmpl, sampleOutput)
	require.Len(t, parsed, 9)

	assert.Equal(t, Route{
		Protocol: "S", Network: "0.0.0.0", Mask: "0",
		Distance: "1", Metric: "0", NextHopIP: "10.1.1.1",
	}, parsed[0])

	assert.Equal(t, Route{
		Protocol: "C", Network: "10.1.1.0", Mask: "24",
		NextHopIF: "GigabitEthernet0/1",
	}, parsed[1])

	eigrp := parsed[3]
	assert.Equal(t, "D", eigrp.Protocol)
	assert.Equal(t, "10.2.0.0", eigrp.Network)
	assert.Equal(t, "16", eigrp.Mask)
	assert.Equal(t, "90", eigrp.Distance)
	assert.Equal(t, "156160", eigrp.Metric)
	assert.Equal(t, "10.1.1.2", eigrp.NextHopIP)
	assert.Equal(t, "GigabitEthernet0/1", eigrp.NextHopIF)
	assert.Equal(t, "00:10:15", eigrp.Uptime)
}

func TestParse_TwoLineRoute(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	parsed := Parse(tmpl, sampleOutput)

	split := parsed[6]
	assert.Equal(t, "O", split.Protocol)
	assert.Equal(t, "10.50.0.0", split.Network, "network captured from the first line")
	assert.Equal(t, "16", split.Mask)
	assert.Equal(t, "110", split.Distance, "distance captured from the continuation line")
	assert.Equal(t, "10.1.1.3", split.NextHopIP)
}

func TestParse_InheritedMask(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	parsed := Parse(tmpl, sampleOutput)

	// Both routes under the "192.168.1.0/24 is subnetted" marker carry no
	// mask of their own.
	inherited := parsed[7]
	assert.Equal(t, "D", inherited.Protocol)
	assert.Equal(t, "192.168.1.0", inherited.Network)
	assert.Equal(t, "24", inherited.Mask, "mask filled down from the subnetted marker")

	connected := parsed[8]
	assert.Equal(t, "C", connected.Protocol)
	assert.Equal(t, "192.168.1.128", connected.Network)
	assert.Equal(t, "24", connected.Mask)
}

func TestLoadTemplate(t *testing.T) {
	t.Run("empty path falls back to embedded grammar", func(t *testing.T) {
		tmpl, err := LoadTemplate("")
		require.NoError(t, err)
		assert.Contains(t, tmpl.States, "Routes")
	})

	t.Run("custom template file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.template")
		custom := "Value WORD (\\w+)\n\nStart\n  ^${WORD} -> Record\n"
		require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

		tmpl, err := LoadTemplate(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"WORD"}, tmpl.Header())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.template"))
		require.Error(t, err)
	})

	t.Run("malformed template file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.template")
		require.NoError(t, os.WriteFile(path, []byte("Value X ([)\n\nStart\n"), 0o600))

		_, err := LoadTemplate(path)
		require.Error(t, err)
	})
}
