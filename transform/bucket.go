package transform

import (
	"encoding/binary"
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tabular/tabular"
)

// BucketTransform maps a source value to one of N buckets by hashing its byte
// representation, spreading writes across partitions regardless of value
// distribution.
type BucketTransform struct {
	buckets int
}

// Bucket is a factory for BucketTransforms
func Bucket(buckets int) BucketTransform {
	return BucketTransform{buckets: buckets}
}

// NumBuckets returns the bucket count of this BucketTransform
func (t BucketTransform) NumBuckets() int { return t.buckets }

// Name returns the name of a BucketTransform
func (t BucketTransform) Name() string { return "bucket" }

// AppliesTo returns true iff fieldType has a stable byte representation to hash.
// Floating point types are excluded: -0.0 and 0.0 compare equal but hash apart.
func (t BucketTransform) AppliesTo(fieldType tabular.Type) bool {
	switch fieldType.ID() {
	case tabular.IntTypeID, tabular.LongTypeID, tabular.DateTypeID,
		tabular.TimestampTypeID, tabular.DecimalTypeID, tabular.StringTypeID,
		tabular.UUIDTypeID, tabular.FixedTypeID, tabular.BinaryTypeID:
		return true
	default:
		return false
	}
}

// String returns the serialized form of a BucketTransform
func (t BucketTransform) String() string {
	return fmt.Sprintf("bucket[%d]", t.buckets)
}

// ApplyBytes hashes a value's byte representation into a bucket number in [0, N)
func (t BucketTransform) ApplyBytes(v []byte) int {
	return int(xxhash.Sum64(v) % uint64(t.buckets))
}

// ApplyString hashes a string value into a bucket number in [0, N)
func (t BucketTransform) ApplyString(v string) int {
	return int(xxhash.Sum64String(v) % uint64(t.buckets))
}

// ApplyInt hashes an integral value into a bucket number in [0, N)
func (t BucketTransform) ApplyInt(v int64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return t.ApplyBytes(buf[:])
}
