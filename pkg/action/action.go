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

// Package action holds the operations behind each command: checking one
// license expression against a policy, verifying a manifest of packages,
// and listing the registered licenses.
package action

import (
	"github.com/Masterminds/log-go"

	"github.com/rancher-sandbox/licy/pkg/cli"
)

// Config carries the pieces every action needs.
type Config struct {
	Settings *cli.EnvSettings
	Logger   log.Logger
}

// NewConfig creates a new Config object with the given settings and logger.
func NewConfig(settings *cli.EnvSettings, logger log.Logger) *Config {
	return &Config{
		Settings: settings,
		Logger:   logger,
	}
}
