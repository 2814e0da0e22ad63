// Package encoding documents the physical-value decoders implemented by its
// sub-packages: plain, rle, delta, bytestreamsplit. Each sub-package
// exposes plain functions over a byte slice rather than the symmetrical
// Encoder/Decoder interface pair a read-write library would need, since this
// reader never encodes.
package encoding
