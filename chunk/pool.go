// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package chunk

import (
	"runtime"
	"sync"

	"github.com/0xsoniclabs/codechunk/common/future"
	"github.com/0xsoniclabs/tracy"
)

// Pool splits code into chunks using a fixed set of background workers. A
// pool must be closed to release its workers.
type Pool struct {
	commands chan<- command  // < split requests for the workers
	done     <-chan struct{} // < closed once all workers have stopped
}

type command struct {
	code   []byte
	result future.Promise[[]Chunk]
}

// NewPool starts a pool with the given number of workers. If the number is
// not positive, one worker per CPU is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	commands := make(chan command, 1024)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for command := range commands {
				zone := tracy.ZoneBegin("chunk::split")
				command.result.Fulfill(future.Ok(Split(command.code)))
				zone.End()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	return &Pool{
		commands: commands,
		done:     done,
	}
}

// Submit schedules the given code for splitting. The code must not be
// modified until the returned future is resolved.
func (p *Pool) Submit(code []byte) future.Future[[]Chunk] {
	promise, future := future.Create[[]Chunk]()
	p.commands <- command{code: code, result: promise}
	return future
}

// SplitAll splits all given codes and returns the chunks in input order.
func (p *Pool) SplitAll(codes [][]byte) [][]Chunk {
	res := make([][]Chunk, len(codes))

	// Cut-off for a small number of codes, in which case we run sequentially.
	// It is not worth the overhead of parallelism.
	if len(codes) < 20 {
		for i, code := range codes {
			res[i] = Split(code)
		}
		return res
	}

	zone := tracy.ZoneBegin("chunk::split_all")
	defer zone.End()
	futures := make([]future.Future[[]Chunk], len(codes))
	for i, code := range codes {
		futures[i] = p.Submit(code)
	}
	for i, f := range futures {
		res[i] = f.Await().Value
	}
	return res
}

// Close stops all workers after pending requests have been processed. The
// pool must not be used afterwards.
func (p *Pool) Close() {
	close(p.commands)
	<-p.done
}
