// Copyright 2023 Mapforge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/mapforge/chainmap/pkg/common/cmerr"
	"github.com/mapforge/chainmap/pkg/container/chainmap"
	"github.com/mapforge/chainmap/pkg/logutil"
)

const (
	//initial bucket count of a fresh map. default: 2
	defaultInitialBucketCount = 2

	//growth factor applied to the element count at resize. default: 2
	defaultGrowthFactor = 2

	//log level of the embedding process. default: info
	defaultLogLevel = "info"

	//log format of the embedding process. default: console
	defaultLogFormat = "console"

	//log file max size in MB before rotation. default: 512
	defaultLogMaxSize = 512
)

// Parameters of the map library for an embedding application.
type Parameters struct {
	//initial bucket count of a fresh map. default: 2
	InitialBucketCount uint64 `toml:"initialBucketCount"`

	//growth factor applied to the element count at resize. default: 2
	GrowthFactor uint64 `toml:"growthFactor"`

	//log configuration of the embedding process
	Log logutil.LogConfig `toml:"log"`
}

func (p *Parameters) SetDefaultValues() {
	if p.InitialBucketCount == 0 {
		p.InitialBucketCount = defaultInitialBucketCount
	}
	if p.GrowthFactor == 0 {
		p.GrowthFactor = defaultGrowthFactor
	}
	if p.Log.Level == "" {
		p.Log.Level = defaultLogLevel
	}
	if p.Log.Format == "" {
		p.Log.Format = defaultLogFormat
	}
	if p.Log.MaxSize == 0 {
		p.Log.MaxSize = defaultLogMaxSize
	}
}

func (p *Parameters) Validate() error {
	if p.GrowthFactor < 2 {
		return cmerr.NewBadConfig("growth factor %d must be at least 2", p.GrowthFactor)
	}
	if p.InitialBucketCount < 1 {
		return cmerr.NewBadConfig("initial bucket count %d must be at least 1", p.InitialBucketCount)
	}
	switch p.Log.Format {
	case "console", "json":
	default:
		return cmerr.NewBadConfig("unsupported log format: %s", p.Log.Format)
	}
	return nil
}

// MapOptions translates the parameters into chainmap Init options.
func (p *Parameters) MapOptions() chainmap.Options {
	return chainmap.Options{
		InitialBucketCnt: p.InitialBucketCount,
		GrowthFactor:     p.GrowthFactor,
	}
}

// LoadParametersFromFile reads a toml file, fills in defaults and
// validates the result.
func LoadParametersFromFile(configFile string) (*Parameters, error) {
	p := &Parameters{}
	if _, err := toml.DecodeFile(configFile, p); err != nil {
		return nil, cmerr.NewBadConfig("decode %s: %v", configFile, err)
	}
	p.SetDefaultValues()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
