// Copyright 2025 crcfast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package crcfast computes CRC-32 and CRC-64 checksums using a
// polynomial folding engine with runtime CPU-capability dispatch.
//
// It follows the same design as a hardware accelerated CRC library:
// bytes are consumed through an Arch Ops vector interface dispatched to
// the best tier the running CPU supports, parameterised by folding
// constants produced by a cached generator, down to a raw accumulator
// that is xor'd with the variant's xorout to produce the final value.
//
// Basic usage:
//
//	import "github.com/foldwise/crcfast/crcfast"
//
//	sum := crcfast.Checksum(crcfast.CRC32Iscsi, data)
//
//	d := crcfast.NewDigest(crcfast.CRC32Iscsi)
//	d.Update(part1)
//	d.Update(part2)
//	sum = d.Finalize()
package crcfast
