package cli

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var (
	// MemorySampleRate is how often the heap is dumped, in Hz. Values below 1
	// are recommended to avoid having to sort through too many dump files.
	MemorySampleRate = 0.5

	cpuProfiler *cpuProfilerState
	memProfiler *memProfilerState
)

type cpuProfilerState struct {
	profileOutput *os.File
}

type memProfilerState struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan bool
}

func StartCPUProfiler(profilePath string) error {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return err
	}

	runtime.SetCPUProfileRate(500)
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		profileOutput.Close()
		return err
	}

	cpuProfiler = &cpuProfilerState{profileOutput: profileOutput}
	return nil
}

func StopCPUProfiler() {
	if cpuProfiler != nil {
		pprof.StopCPUProfile()
		cpuProfiler.profileOutput.Close()
		cpuProfiler = nil
	}
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	memProfiler = &memProfilerState{dumpPath: profileDumpPath, shouldProfilerStop: make(chan bool)}

	go func() {
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		for {
			select {
			case <-memProfiler.shouldProfilerStop:
				return
			case <-ticker.C:
				DumpMemoryProfile()
			}
		}
	}()
}

func DumpMemoryProfile() {
	if memProfiler != nil {
		w := bytes.NewBuffer(nil)
		pprof.WriteHeapProfile(w)
		memProfiler.heapDumps = append(memProfiler.heapDumps, w.Bytes())
	}
}

func StopMemoryProfiler() {
	if memProfiler != nil {
		memProfiler.shouldProfilerStop <- true
		DumpMemoryProfile()
		_ = os.Mkdir(memProfiler.dumpPath, os.ModePerm)
		for dIdx, dump := range memProfiler.heapDumps {
			err := os.WriteFile(fmt.Sprintf("%s/mem-%d.mprof", memProfiler.dumpPath, dIdx), dump, os.ModePerm)
			if err != nil {
				log.Println("Error writing memory profile to disk")
			}
		}
		memProfiler = nil
	}
}
