/*
Copyright SUSE LLC.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package action

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/licy/pkg/spdx"
)

func TestListRun(t *testing.T) {
	cfg, _ := configFixture()
	client := NewList(cfg)

	res := client.Run()
	assert.Equal(t, spdx.Licenses(), res.Licenses)
}

func TestListRunOSIOnly(t *testing.T) {
	cfg, _ := configFixture()
	client := NewList(cfg)
	client.OSIOnly = true

	res := client.Run()
	require.NotEmpty(t, res.Licenses)
	assert.Less(t, len(res.Licenses), len(spdx.Licenses()))
	for _, lic := range res.Licenses {
		assert.True(t, lic.OSIApproved, "%s is not OSI approved", lic.ID)
	}
}

func TestListResultWriters(t *testing.T) {
	cfg, _ := configFixture()
	res := NewList(cfg).Run()

	var buf bytes.Buffer
	require.NoError(t, res.WriteTable(&buf))
	assert.Contains(t, buf.String(), "ID")
	assert.Contains(t, buf.String(), "MIT")

	buf.Reset()
	require.NoError(t, res.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"id":"MIT"`)

	buf.Reset()
	require.NoError(t, res.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "id: MIT")
}
