package main

import (
	"context"
	"fmt"
	"io"
	"os"

	buffer "github.com/chronos-tachyon/buffer/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/checksums"
)

const (
	streamNumBits    = 16
	minJobChunk      = 1 << 20
	stdinPlaceholder = "-"
)

func sumOne(d *checksums.Dispatcher, kind checksums.Kind, name string) (uint32, int64, error) {
	seed := uint32(flagSeed.Value)

	if name == stdinPlaceholder {
		return streamSum(d, kind, os.Stdin, seed)
	}

	f, err := os.Open(name)
	if err != nil {
		return 0, 0, err
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Logger.Warn().
				Str("filename", name).
				Err(err).
				Msg("failed to Close input file")
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return 0, 0, err
	}

	size := fi.Size()
	if !fi.Mode().IsRegular() {
		return streamSum(d, kind, f, seed)
	}

	switch {
	case flagMmap:
		sum, err := mappedSum(d, kind, f, size, seed)
		return sum, size, err

	case flagJobs > 1 && size > minJobChunk:
		sum, err := parallelSum(context.Background(), d, kind, f, size, seed)
		return sum, size, err

	default:
		return streamSum(d, kind, f, seed)
	}
}

// streamSum feeds r through a fixed-size ring buffer, folding each
// contiguous run into the running checksum.
func streamSum(d *checksums.Dispatcher, kind checksums.Kind, r io.Reader, prev uint32) (uint32, int64, error) {
	var buf buffer.Buffer
	buf.Init(streamNumBits)

	sum := prev
	total := int64(0)
	for {
		n, err := buf.ReadFrom(r)
		for !buf.IsEmpty() {
			p := buf.PrepareBulkRead(buf.Size())
			sum = d.Update(kind, sum, p)
			total += int64(len(p))
			buf.CommitBulkRead(uint(len(p)))
		}
		if err == io.EOF || (err == nil && n == 0) {
			return sum, total, nil
		}
		if err != nil {
			return sum, total, err
		}
	}
}

// checkMapSize rejects file sizes that cannot be expressed as a slice
// length no larger than limit.
func checkMapSize(size int64, limit uint64) error {
	if size < 0 || uint64(size) > limit {
		return fmt.Errorf("file size %d does not fit in the address space", size)
	}
	return nil
}

func mappedSum(d *checksums.Dispatcher, kind checksums.Kind, f *os.File, size int64, prev uint32) (uint32, error) {
	buf, unmap, err := mapFile(f, size)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err := unmap(); err != nil {
			log.Logger.Warn().
				Str("filename", f.Name()).
				Err(err).
				Msg("failed to unmap input file")
		}
	}()

	log.Logger.Trace().
		Str("filename", f.Name()).
		Str("bufferKind", buf.Kind().String()).
		Int("size", buf.Size()).
		Msg("mapped")

	return d.Compute(kind, buf, 0, buf.Size(), prev)
}

// parallelSum checksums independent sections of f concurrently and then
// stitches the partial results together with Combine.
func parallelSum(ctx context.Context, d *checksums.Dispatcher, kind checksums.Kind, f *os.File, size int64, prev uint32) (uint32, error) {
	chunk := (size + int64(flagJobs) - 1) / int64(flagJobs)
	if chunk < minJobChunk {
		chunk = minJobChunk
	}
	count := int((size + chunk - 1) / chunk)

	sums := make([]uint32, count)
	lens := make([]int64, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(flagJobs)
	for i := 0; i < count; i++ {
		offset := int64(i) * chunk
		length := chunk
		if offset+length > size {
			length = size - offset
		}
		lens[i] = length

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := uint32(0)
			if i == 0 {
				seed = prev
			}
			sum, n, err := streamSum(d, kind, io.NewSectionReader(f, offset, length), seed)
			if err != nil {
				return err
			}
			if n != length {
				return io.ErrUnexpectedEOF
			}
			sums[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	sum := sums[0]
	for i := 1; i < count; i++ {
		sum = checksums.Combine(kind, sum, sums[i], lens[i])
	}

	log.Logger.Debug().
		Str("filename", f.Name()).
		Int("chunks", count).
		Int64("chunkSize", chunk).
		Msg("combined")

	return sum, nil
}
