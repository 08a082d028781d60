/*
   Copyright 2026 The DIRPX Authors.

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

package config_test

import (
	"testing"
	"time"

	"dirpx.dev/nexus/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.SpinLimit != config.DefaultSpinLimit {
		t.Fatalf("SpinLimit = %d, want %d", got.SpinLimit, config.DefaultSpinLimit)
	}
	if got.YieldLimit != config.DefaultYieldLimit {
		t.Fatalf("YieldLimit = %d, want %d", got.YieldLimit, config.DefaultYieldLimit)
	}
	if got.SleepInterval != config.DefaultSleepInterval {
		t.Fatalf("SleepInterval = %v, want %v", got.SleepInterval, config.DefaultSleepInterval)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithSpinLimit(t *testing.T) {
	c := config.NewConfig(config.WithSpinLimit(3))
	if c.SpinLimit != 3 {
		t.Fatalf("SpinLimit = %d, want 3", c.SpinLimit)
	}

	// Zero disables busy polling; the constructor only resets negatives.
	c2 := config.NewConfig(config.WithSpinLimit(0))
	if c2.SpinLimit != 0 {
		t.Fatalf("SpinLimit = %d, want 0 (zero is allowed)", c2.SpinLimit)
	}

	c3 := config.NewConfig(config.WithSpinLimit(-1))
	if c3.SpinLimit != config.DefaultSpinLimit {
		t.Fatalf("SpinLimit = %d, want default %d", c3.SpinLimit, config.DefaultSpinLimit)
	}
}

func TestWithYieldLimit(t *testing.T) {
	c := config.NewConfig(config.WithYieldLimit(7))
	if c.YieldLimit != 7 {
		t.Fatalf("YieldLimit = %d, want 7", c.YieldLimit)
	}

	c2 := config.NewConfig(config.WithYieldLimit(-1))
	if c2.YieldLimit != config.DefaultYieldLimit {
		t.Fatalf("YieldLimit = %d, want default %d", c2.YieldLimit, config.DefaultYieldLimit)
	}
}

func TestWithSleepInterval(t *testing.T) {
	c := config.NewConfig(config.WithSleepInterval(time.Millisecond))
	if c.SleepInterval != time.Millisecond {
		t.Fatalf("SleepInterval = %v, want 1ms", c.SleepInterval)
	}

	// A waiter's sleep tier must always make progress, so non-positive
	// intervals reset to the default.
	c2 := config.NewConfig(config.WithSleepInterval(0))
	if c2.SleepInterval != config.DefaultSleepInterval {
		t.Fatalf("SleepInterval = %v, want default %v", c2.SleepInterval, config.DefaultSleepInterval)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithSpinLimit(2),
		config.WithSpinLimit(5),
		config.WithYieldLimit(10),
		config.WithYieldLimit(20),
		config.WithSleepInterval(time.Millisecond),
		config.WithSleepInterval(2*time.Millisecond),
	)

	if c.SpinLimit != 5 {
		t.Errorf("SpinLimit = %d, want 5 (last option wins)", c.SpinLimit)
	}
	if c.YieldLimit != 20 {
		t.Errorf("YieldLimit = %d, want 20 (last option wins)", c.YieldLimit)
	}
	if c.SleepInterval != 2*time.Millisecond {
		t.Errorf("SleepInterval = %v, want 2ms (last option wins)", c.SleepInterval)
	}
}
