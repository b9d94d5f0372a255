package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowLogMs       = int64(500)
	maxTransactions = 10
)

var (
	timeNow = time.Now
	met     = metrics.New("query")
)

type impl struct {
	client *mongoclient.Client
	tokens chan int
}

// New initializes an impl
func New(client *mongoclient.Client) Mongo {
	tokens := make(chan int, maxTransactions)
	for i := 0; i < maxTransactions; i++ {
		tokens <- i + 1
	}
	return &impl{
		client: client,
		tokens: tokens,
	}
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) logerr(context ctx.Ctx, msg string, err error) {
	met.BumpSum("err", 1, "msg", msg)
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(context, string(table), "insert", nil, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":  table,
		"insert": insert,
	})

	if _, err := im.coll(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(context, string(table), "findone", query, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	opts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.coll(table).FindOne(context, query, opts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer met.BumpTime("time", "func", "count", "table", string(table)).End()
	defer slowLog(context, string(table), "count", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	opts := options.Count().SetMaxTime(queryMaxTime)
	count, err := im.coll(table).CountDocuments(context, selector, opts)
	if err != nil {
		im.logerr(context, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "upsert", "table", string(table)).End()
	defer slowLog(context, string(table), "upsert", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	opts := options.Replace().SetUpsert(true)
	if _, err := im.coll(table).ReplaceOne(context, selector, update, opts); err != nil {
		im.logerr(context, "Upsert: ReplaceOne failed", err)
		return err
	}
	return nil
}

func sortOption(sortStrings ...string) bson.D {
	res := bson.D{}
	for _, sort := range sortStrings {
		if sort == "" {
			continue
		}
		if sort[0] == '-' {
			res = append(res, bson.E{Key: sort[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: sort, Value: 1})
		}
	}
	return res
}

func (im *impl) search(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(context, string(table), "search", query, sortFields)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	opts := options.Find().SetMaxTime(queryMaxTime).SetLimit(int64(limit)).SetSkip(int64(offset))
	if s := sortOption(sortFields...); len(s) > 0 {
		opts.SetSort(s)
	}
	cursor, err := im.coll(table).Find(context, query, opts)
	if err != nil {
		im.logerr(context, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		im.logerr(context, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	return im.search(context, table, offset, limit, []string{sort}, query, results)
}

func (im *impl) SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error {
	return im.search(context, table, offset, limit, sortFields, query, results)
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error {
	defer met.BumpTime("time", "func", "update", "table", string(table)).End()
	defer slowLog(context, string(table), "update", selector, nil)()

	o := &patchOp{}
	for _, opt := range ops {
		opt(o)
	}

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	var (
		res     *mongo.UpdateResult
		err     error
		updater = bson.M{"$set": update}
	)
	if o.patchMany {
		res, err = im.coll(table).UpdateMany(context, selector, updater)
	} else {
		res, err = im.coll(table).UpdateOne(context, selector, updater)
	}
	if err != nil {
		im.logerr(context, "Patch: Update failed", err)
		return err
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error {
	defer met.BumpTime("time", "func", "customupdate", "table", string(table)).End()
	defer slowLog(context, string(table), "customupdate", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	opts := options.Update().SetUpsert(upsert)
	res, err := im.coll(table).UpdateOne(context, selector, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "CustomPatch: UpdateOne failed", err)
		return err
	}

	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error {
	return im.IncrementMany(context, table, selector, bson.M{field: inc}, nil, result)
}

func (im *impl) IncrementMany(context ctx.Ctx, table domain.Table, query interface{}, fieldAndValues bson.M, set bson.M, result interface{}) error {
	defer met.BumpTime("time", "func", "incrementMany", "table", string(table)).End()
	defer slowLog(context, string(table), "incrementMany", query, nil)()

	updater := bson.M{"$inc": fieldAndValues}
	if set != nil {
		updater["$setOnInsert"] = set
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	if err := im.coll(table).FindOneAndUpdate(context, query, updater, opts).Decode(result); err != nil {
		im.logerr(ctx.WithValue(context, "table", table), "IncrementMany: FindOneAndUpdate failed", err)
		return err
	}
	return nil
}

func (im *impl) Push(context ctx.Ctx, table domain.Table, query, result interface{}, field string, item interface{}) error {
	defer met.BumpTime("time", "func", "push", "table", string(table)).End()
	defer slowLog(context, string(table), "push", query, nil)()

	updater := bson.M{"$push": bson.M{field: item}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	if err := im.coll(table).FindOneAndUpdate(context, query, updater, opts).Decode(result); err != nil {
		im.logerr(ctx.WithValue(context, "table", table), "Push: FindOneAndUpdate failed", err)
		return err
	}
	return nil
}

func (im *impl) EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error {
	if len(indexes) == 0 {
		// an explicit create makes sure the collection exists
		err := im.client.Database(im.client.DbName).CreateCollection(context, string(table))
		if err != nil && !isNamespaceExists(err) {
			im.logerr(ctx.WithValue(context, "table", table), "EnsureIndexes: CreateCollection failed", err)
			return err
		}
		return nil
	}

	models := make([]mongo.IndexModel, 0, len(indexes))
	for _, idx := range indexes {
		models = append(models, mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetUnique(idx.Unique),
		})
	}
	if _, err := im.coll(table).Indexes().CreateMany(context, models); err != nil {
		im.logerr(ctx.WithValue(context, "table", table), "EnsureIndexes: CreateMany failed", err)
		return err
	}
	return nil
}

func isNamespaceExists(err error) bool {
	cmdErr, ok := err.(mongo.CommandError)
	// NamespaceExists
	return ok && cmdErr.Code == 48
}

// RunWithTransaction runs run inside a session transaction, run may be
// retried by the driver on transient errors so it must not keep state
// outside of the transaction between attempts.
func (im *impl) RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error {
	defer met.BumpTime("time", "func", "transaction").End()

	var token int
	select {
	case <-context.Done():
		return context.Err()
	case token = <-im.tokens:
	}
	defer func() {
		im.tokens <- token
	}()

	session, err := im.client.StartSession()
	if err != nil {
		im.logerr(context, "RunWithTransaction: StartSession failed", err)
		return err
	}
	defer session.EndSession(context)

	fn := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.From(context, sessCtx))
	}
	_, err = session.WithTransaction(context, fn)
	return err
}

func slowLog(context ctx.Ctx, table, action string, query interface{}, sort interface{}) func() {
	start := timeNow()

	return func() {
		elapsedMs := time.Since(start).Milliseconds()
		if elapsedMs >= slowLogMs {
			met.BumpSum("slowlog", 1, "table", table, "action", action)
			context.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsedMs,
				"query":      query,
				"sort":       sort,
			}).Warn("mongo slowlog")
		}
	}
}
