package query

/*
	Package `query` wraps https://github.com/mongodb/mongo-go-driver for the
	stores. Every method takes the ctx handed out by RunWithTransaction when
	called inside a transaction, so reads and writes join the session.
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Index describes one index of a table
type Index struct {
	Keys   bson.D
	Unique bool
}

// Mongo abstract the mongo layer.
type Mongo interface {
	domain.Transactor

	// Insert inserts a new document to the table
	// Return ErrDuplicateKey on unique index violation
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	// Return ErrNotFound if query does not match any documents
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, inserts it when missing
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	// limit 0 means no limit
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// SearchNSorts sort with multiple fields, make sure the order matches a compound index
	SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// Patch $set update on the entry, if the selector not exist, return ErrNotFound.
	// To patch all entries selected, set WithPatchMany(true).
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// CustomPatch patch an entry with customized mongo update
	// Return ErrNotFound if upsert is false and selector does not match any documents
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// Increment let you increase a field number.
	// If entry not exist, insert it.
	Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error

	// IncrementMany let you increase fields and their values.
	// If entry not exist, insert with set statement.
	IncrementMany(context ctx.Ctx, table domain.Table, query interface{}, fieldAndValues bson.M, set bson.M, result interface{}) error

	// Push push `item` to `field` according `query`, upserts the entry
	Push(context ctx.Ctx, table domain.Table, query, result interface{}, field string, item interface{}) error

	// EnsureIndexes creates the indexes of table, it also creates the
	// collection which must exist before a transaction writes to it
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error
}
