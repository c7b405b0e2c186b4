/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package today_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/botobag/graphqlservice/concurrent"
	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
	"github.com/botobag/graphqlservice/internal/testutil"
	"github.com/botobag/graphqlservice/samples/today"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// messageRecorder records the messages logged with Logf.
type messageRecorder struct {
	service.NopLogger
	mutex    sync.Mutex
	messages []string
}

func (r *messageRecorder) Logf(format string, args ...interface{}) {
	r.mutex.Lock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
	r.mutex.Unlock()
}

func (r *messageRecorder) Messages() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]string(nil), r.messages...)
}

var _ = Describe("Store", func() {
	var (
		ctx    context.Context
		schema *introspection.Schema
		logger *messageRecorder
	)

	// field resolves fieldName on object with args given in JSON.
	field := func(object interface{}, fieldName string, args string) interface{} {
		Expect(object).Should(BeAssignableToTypeOf(&service.Object{}))
		params := service.FieldParams{}
		if len(args) > 0 {
			params.Arguments = response.MustParse(args)
		}
		value, err := future.BlockOn(object.(*service.Object).Resolve(ctx, fieldName, params))
		Expect(err).ShouldNot(HaveOccurred())
		return value
	}

	fieldError := func(object *service.Object, fieldName string, args string) error {
		params := service.FieldParams{}
		if len(args) > 0 {
			params.Arguments = response.MustParse(args)
		}
		_, err := future.BlockOn(object.Resolve(ctx, fieldName, params))
		return err
	}

	// idArg returns the JSON form of id.
	idArg := func(id []byte) string {
		data, err := response.NewID(id).MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		return string(data)
	}

	BeforeEach(func() {
		ctx = context.Background()
		logger = &messageRecorder{}

		var err error
		schema, err = today.NewSchema(introspection.SchemaBuilderConfig{
			Logger: service.NopLogger{},
		})
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("without an executor", func() {
		var (
			store      *today.Store
			operations *today.Operations
			taskID     []byte
		)

		BeforeEach(func() {
			store = today.NewSampleStore(today.StoreConfig{
				Logger: logger,
			})
			taskID = store.AddTask("Write tests", today.TaskStateNew)

			var err error
			operations, err = store.NewOperations(schema, nil)
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("resolves the appointments connection", func() {
			connection := field(operations.Query(), "appointments", "")
			Expect(field(connection, "__typename", "")).Should(Equal(today.AppointmentConnectionTypeName))

			pageInfo := field(connection, "pageInfo", "")
			Expect(field(pageInfo, "hasNextPage", "")).Should(Equal(false))
			Expect(field(pageInfo, "hasPreviousPage", "")).Should(Equal(false))

			edges := field(connection, "edges", "").([]interface{})
			Expect(edges).Should(HaveLen(1))
			Expect(field(edges[0], "cursor", "")).Should(Equal(response.NewInt(0)))

			appointment := field(edges[0], "node", "")
			Expect(field(appointment, "subject", "")).Should(Equal("Lunch?"))
			Expect(field(appointment, "when", "")).Should(Equal(response.NewString("tomorrow")))
			Expect(field(appointment, "isNow", "")).Should(Equal(false))

			id := field(appointment, "id", "").(response.Value)
			Expect(id.Kind()).Should(Equal(response.KindID))
			idBytes, _ := id.IDValue()
			Expect(idBytes).Should(HaveLen(16))
		})

		It("pages through tasks", func() {
			connection := field(operations.Query(), "tasks", `{"first": 1}`)
			edges := field(connection, "edges", "").([]interface{})
			Expect(edges).Should(HaveLen(1))
			Expect(field(field(edges[0], "node", ""), "title", "")).Should(Equal("Don't forget"))
			Expect(field(field(connection, "pageInfo", ""), "hasNextPage", "")).Should(Equal(true))

			connection = field(operations.Query(), "tasks", `{"after": 0}`)
			edges = field(connection, "edges", "").([]interface{})
			Expect(edges).Should(HaveLen(1))
			Expect(field(field(edges[0], "node", ""), "title", "")).Should(Equal("Write tests"))
			Expect(field(field(connection, "pageInfo", ""), "hasPreviousPage", "")).Should(Equal(true))

			connection = field(operations.Query(), "tasks", `{"last": 0}`)
			Expect(field(connection, "edges", "")).Should(BeEmpty())

			err := fieldError(operations.Query(), "tasks", `{"first": -1}`)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Argument "first" must not be negative.`),
				testutil.KindIs(graphql.ErrKindCoercion),
			))

			err = fieldError(operations.Query(), "tasks", `{"after": "x"}`)
			Expect(err).Should(HaveOccurred())
		})

		It("resolves folders", func() {
			connection := field(operations.Query(), "unreadCounts", "")
			edges := field(connection, "edges", "").([]interface{})
			folder := field(edges[0], "node", "")
			Expect(field(folder, "name", "")).Should(Equal(`"Fake" Inbox`))
			Expect(field(folder, "unreadCount", "")).Should(Equal(3))
		})

		It("loads tasks by id in one batch", func() {
			args := fmt.Sprintf(`{"ids": [%s, "AQID", %s]}`, idArg(taskID), idArg(taskID))
			tasks := field(operations.Query(), "tasksById", args).([]interface{})
			Expect(tasks).Should(HaveLen(3))
			Expect(tasks[1]).Should(BeNil())
			Expect(field(tasks[0], "title", "")).Should(Equal("Write tests"))
			Expect(field(tasks[0], "isComplete", "")).Should(Equal(false))
			Expect(tasks[2]).ShouldNot(BeNil())

			Expect(logger.Messages()).Should(Equal([]string{"loading 2 tasks in one batch"}))

			// Cached for the rest of the request
			field(operations.Query(), "tasksById", args)
			Expect(logger.Messages()).Should(HaveLen(1))
		})

		It("doesn't return nodes of another kind by id", func() {
			args := fmt.Sprintf(`{"ids": [%s]}`, idArg(taskID))
			Expect(field(operations.Query(), "unreadCountsById", args)).Should(Equal([]interface{}{nil}))
			Expect(field(operations.Query(), "appointmentsById", args)).Should(Equal([]interface{}{nil}))
		})

		It("resolves a node by id", func() {
			task := field(operations.Query(), "node", fmt.Sprintf(`{"id": %s}`, idArg(taskID)))
			Expect(field(task, "__typename", "")).Should(Equal(today.TaskTypeName))
			Expect(task.(*service.Object).MatchesType(today.NodeTypeName)).Should(BeTrue())
			Expect(task.(*service.Object).MatchesType(today.UnionTypeTypeName)).Should(BeTrue())

			Expect(field(operations.Query(), "node", `{"id": "AQID"}`)).Should(BeNil())
		})

		It("nests without limit", func() {
			nested := field(operations.Query(), "nested", "")
			for depth := 1; depth <= 3; depth++ {
				Expect(field(nested, "depth", "")).Should(Equal(depth))
				nested = field(nested, "nested", "")
			}
		})

		It("answers introspection on the query type", func() {
			schemaObject := field(operations.Query(), "__schema", "")
			Expect(field(field(schemaObject, "mutationType", ""), "name", "")).Should(Equal(today.MutationTypeName))

			taskType := field(operations.Query(), "__type", `{"name": "Task"}`)
			Expect(field(taskType, "kind", "")).Should(Equal(response.NewEnum("OBJECT")))
		})

		It("completes a task", func() {
			args := fmt.Sprintf(`{"input": {"id": %s, "clientMutationId": "m1"}}`, idArg(taskID))
			payload := field(operations.Mutation(), "completeTask", args)
			Expect(field(payload, "clientMutationId", "")).Should(Equal("m1"))
			Expect(field(field(payload, "task", ""), "isComplete", "")).Should(Equal(true))

			state, exists := store.TaskState(taskID)
			Expect(exists).Should(BeTrue())
			Expect(state).Should(Equal(today.TaskStateComplete))

			args = fmt.Sprintf(`{"input": {"id": %s, "isComplete": false}}`, idArg(taskID))
			payload = field(operations.Mutation(), "completeTask", args)
			Expect(field(payload, "clientMutationId", "")).Should(BeNil())
			state, _ = store.TaskState(taskID)
			Expect(state).Should(Equal(today.TaskStateStarted))

			payload = field(operations.Mutation(), "completeTask", `{"input": {"id": "AQID"}}`)
			Expect(field(payload, "task", "")).Should(BeNil())

			Expect(fieldError(operations.Mutation(), "completeTask", "")).Should(HaveOccurred())
		})

		It("serves subscriptions", func() {
			appointment := field(operations.Subscription(), "nextAppointmentChange", "")
			Expect(field(appointment, "subject", "")).Should(Equal("Lunch?"))

			task := field(operations.Subscription(), "nodeChange", fmt.Sprintf(`{"id": %s}`, idArg(taskID)))
			Expect(field(task, "title", "")).Should(Equal("Write tests"))

			err := fieldError(operations.Subscription(), "nodeChange", `{"id": "AQID"}`)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("node 010203 does not exist"),
				testutil.KindIs(graphql.ErrKindExecution),
			))
		})

		It("looks up the root objects by operation type", func() {
			root, err := operations.Root("mutation")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(root).Should(BeIdenticalTo(operations.Mutation()))

			_, err = operations.Root("fragment")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`unknown operation type "fragment"`),
			))
		})
	})

	It("requires every root implementation", func() {
		_, err := today.NewOperations(today.OperationsConfig{Schema: schema})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("query implementation is required"),
			testutil.KindIs(graphql.ErrKindInternal),
		))
	})

	It("loads in the background with an executor", func() {
		executor := concurrent.MustNewGoroutineExecutor(concurrent.GoroutineExecutorConfig{
			MaxConcurrency: 4,
		})
		defer executor.Shutdown()

		store := today.NewSampleStore(today.StoreConfig{
			Executor:     executor,
			MaxBatchSize: 1,
			Logger:       logger,
		})
		archive := store.AddFolder("Archive", 0)
		sent := store.AddFolder("Sent", 1)

		operations, err := store.NewOperations(schema, nil)
		Expect(err).ShouldNot(HaveOccurred())

		connection := field(operations.Query(), "unreadCounts", `{"first": 2}`)
		edges := field(connection, "edges", "").([]interface{})
		Expect(edges).Should(HaveLen(2))
		Expect(field(field(edges[1], "node", ""), "name", "")).Should(Equal("Archive"))

		args := fmt.Sprintf(`{"ids": [%s, %s]}`, idArg(archive), idArg(sent))
		folders := field(operations.Query(), "unreadCountsById", args).([]interface{})
		Expect(folders).Should(HaveLen(2))
		Expect(field(folders[0], "name", "")).Should(Equal("Archive"))
		Expect(field(folders[1], "unreadCount", "")).Should(Equal(1))

		Expect(logger.Messages()).Should(Equal([]string{
			"loading 1 folders in one batch",
			"loading 1 folders in one batch",
		}))
	})

	It("traces non-trivial fields", func() {
		recorder := tracetest.NewSpanRecorder()
		provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		defer provider.Shutdown(context.Background())

		store := today.NewSampleStore(today.StoreConfig{
			Logger: logger,
		})
		operations, err := store.NewOperations(schema, &service.OpenTelemetryTracer{
			Tracer: provider.Tracer("today_test"),
		})
		Expect(err).ShouldNot(HaveOccurred())

		connection := field(operations.Query(), "appointments", `{"first": 1}`)
		Expect(field(connection, "__typename", "")).Should(Equal(today.AppointmentConnectionTypeName))

		spans := recorder.Ended()
		Expect(spans).Should(HaveLen(1))
		Expect(spans[0].Name()).Should(Equal("Field: Query.appointments"))
		Expect(spans[0].Attributes()).Should(ContainElement(attribute.String("graphql.args.first", "1")))
	})
})
