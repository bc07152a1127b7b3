package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	cases := []struct {
		name string
		args []string
		out  string
	}{
		{"shipped boxes", nil, "no collision\n"},
		{"touching", []string{"-b", "16,0,16,16"}, "collision detected\n"},
		{"contained", []string{"-a", "0,0,10,10", "-b", "2,2,3,3"}, "collision detected\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			require.Equal(t, 0, run(c.args, stdout, stderr))
			require.Equal(t, c.out, stdout.String())
			require.Empty(t, stderr.String())
		})
	}
}

func TestDemoBadFlags(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	require.Equal(t, 2, run([]string{"-a", "1,2"}, stdout, stderr))
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "-a: ")

	stderr.Reset()
	require.Equal(t, 2, run([]string{"-nope"}, stdout, stderr))
	require.NotEmpty(t, stderr.String())
}
