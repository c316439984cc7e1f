// Copyright 2026 Materialize, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/andofcourse/materialize/pkg/errors"
)

// StrictDecodeFile decodes the toml file at path into cfg. If any key in
// the file is not mapped into cfg, an error is returned and the sweep does
// not start.
func StrictDecodeFile(path string, cfg interface{}) error {
	metaData, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.WrapError(errors.ErrInvalidConfig, err, path)
	}
	if undecoded := metaData.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, item := range undecoded {
			keys = append(keys, item.String())
		}
		return errors.ErrInvalidConfig.GenWithStackByArgs(fmt.Sprintf(
			"config file %s contained unknown configuration options: %s",
			path, strings.Join(keys, ", ")))
	}
	return nil
}
