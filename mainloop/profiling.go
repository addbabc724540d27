// This file is part of sdl2raii.
//
// sdl2raii is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl2raii is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl2raii.  If not, see <https://www.gnu.org/licenses/>.

package mainloop

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/sdl2raii/curated"
)

// CPUProfile writes a CPU profile of the run function to outFile. If outFile
// is empty then run is called without profiling.
func CPUProfile(outFile string, run func() error) error {
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

// MemProfile writes a heap profile to outFile.
func MemProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profile: %v", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("profile: %v", err)
	}

	return nil
}
