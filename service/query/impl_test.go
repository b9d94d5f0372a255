package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Id    string `bson:"_id"`
	Name  string `bson:"name"`
	Seq   int64  `bson:"seq"`
	Items []int  `bson:"items"`
}

type querySuite struct {
	suite.Suite
	im *impl
}

// requires a replica set, e.g. MONGO_URI=mongodb://localhost:27017/?replicaSet=rs0
func TestQuery(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupSuite() {
	client := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                os.Getenv("MONGO_URI"),
		DBName:             dbName,
		SetSafe:            true,
		PoolSizeMultiplier: 1,
	})
	q.im = New(client).(*impl)
}

func (q *querySuite) SetupTest() {
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable))
}

func (q *querySuite) TestInsertAndFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Name: "alice"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Name: "again"}))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "a"}, &res))
	q.Equal("alice", res.Name)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "b"}, &res))
}

func (q *querySuite) TestPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Name: "alice"}))

	q.NoError(q.im.Patch(mockCTX, mockTable, bson.M{"_id": "a", "name": "alice"}, bson.M{"name": "bob"}))
	// selector no longer matches
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"_id": "a", "name": "alice"}, bson.M{"name": "carol"}))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"name": "bob"})
	q.NoError(err)
	q.Equal(1, n)
}

func (q *querySuite) TestIncrementAndPush() {
	res := dummy{}
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"_id": "counter"}, &res, "seq", 1))
	q.Equal(int64(1), res.Seq)
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"_id": "counter"}, &res, "seq", 1))
	q.Equal(int64(2), res.Seq)

	q.Require().NoError(q.im.Push(mockCTX, mockTable, bson.M{"_id": "idx"}, &res, "items", 3))
	q.Require().NoError(q.im.Push(mockCTX, mockTable, bson.M{"_id": "idx"}, &res, "items", 1))
	q.Equal([]int{3, 1}, res.Items)
}

func (q *querySuite) TestSearchSorted() {
	for _, d := range []dummy{{Id: "b", Seq: 2}, {Id: "c", Seq: 3}, {Id: "a", Seq: 1}} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, d))
	}

	res := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 0, "-seq", bson.M{}, &res))
	q.Require().Len(res, 3)
	q.Equal("c", res[0].Id)
	q.Equal("a", res[2].Id)
}

func (q *querySuite) TestRunWithTransactionRollback() {
	errAbort := errors.New("abort")
	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := q.im.Insert(c, mockTable, dummy{Id: "tx"}); err != nil {
			return err
		}
		return errAbort
	})
	q.Equal(errAbort, err)

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"_id": "tx"})
	q.NoError(err)
	q.Equal(0, n)

	q.NoError(q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		return q.im.Insert(c, mockTable, dummy{Id: "tx"})
	}))
	n, err = q.im.Count(mockCTX, mockTable, bson.M{"_id": "tx"})
	q.NoError(err)
	q.Equal(1, n)
}
