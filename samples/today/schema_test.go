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
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
	"github.com/botobag/graphqlservice/samples/today"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("AddTypesToSchema", func() {
	var schema *introspection.Schema

	BeforeEach(func() {
		var err error
		schema, err = today.NewSchema(introspection.SchemaBuilderConfig{
			Logger: service.NopLogger{},
		})
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("sets the root operation types", func() {
		Expect(schema.QueryType().Name()).Should(Equal(today.QueryTypeName))
		Expect(schema.MutationType().Name()).Should(Equal(today.MutationTypeName))
		Expect(schema.SubscriptionType().Name()).Should(Equal(today.SubscriptionTypeName))
	})

	It("registers the node types", func() {
		node := schema.LookupType(today.NodeTypeName)
		Expect(node.Kind()).Should(Equal(introspection.TypeKindInterface))

		for _, name := range []string{today.AppointmentTypeName, today.TaskTypeName, today.FolderTypeName} {
			t := schema.LookupType(name)
			Expect(t.Interfaces()).Should(Equal([]*introspection.Type{node}), name)
			Expect(t.Fields(false)[0].Name()).Should(Equal("id"))
			Expect(t.Fields(false)[0].Type()).Should(BeIdenticalTo(node.Fields(false)[0].Type()))
		}

		union := schema.LookupType(today.UnionTypeTypeName)
		Expect(union.PossibleTypes()).Should(HaveLen(3))
	})

	It("describes the arguments of Query", func() {
		query := schema.QueryType()
		fields := query.Fields(false)
		Expect(fields).Should(HaveLen(8))

		appointments := fields[1]
		Expect(appointments.Name()).Should(Equal("appointments"))
		Expect(appointments.Type().String()).Should(Equal("AppointmentConnection!"))
		Expect(appointments.Args()).Should(HaveLen(4))
		Expect(appointments.Args()[1].Type().Name()).Should(Equal(today.ItemCursorTypeName))

		tasksByID := fields[5]
		Expect(tasksByID.Name()).Should(Equal("tasksById"))
		Expect(tasksByID.Type().String()).Should(Equal("[Task]!"))
		Expect(tasksByID.Args()[0].Type().String()).Should(Equal("[ID!]!"))
	})

	It("deprecates the Unassigned task state", func() {
		taskState := schema.LookupType(today.TaskStateTypeName)
		Expect(taskState.EnumValues(false)).Should(HaveLen(3))

		values := taskState.EnumValues(true)
		Expect(values).Should(HaveLen(4))
		Expect(values[3].Name()).Should(Equal("Unassigned"))
		reason, deprecated := values[3].DeprecationReason()
		Expect(deprecated).Should(BeTrue())
		Expect(reason).Should(Equal("Need to deprecate an enum value"))
	})

	It("defaults isComplete of CompleteTaskInput to true", func() {
		inputFields := schema.LookupType(today.CompleteTaskInputTypeName).InputFields()
		Expect(inputFields).Should(HaveLen(3))
		defaultValue, hasDefault := inputFields[1].DefaultValue()
		Expect(hasDefault).Should(BeTrue())
		Expect(defaultValue).Should(Equal("true"))
	})
})

var _ = Describe("TaskState", func() {
	It("converts from enum values", func() {
		state, err := today.ConvertTaskState("state", response.NewEnum("Started"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(state).Should(Equal(today.TaskStateStarted))
		Expect(state.String()).Should(Equal("Started"))
		Expect(state.Value()).Should(Equal(response.NewEnum("Started")))

		_, err = today.ConvertTaskState("state", response.NewEnum("Complet"))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "Complete"?`))
	})
})

var _ = Describe("CompleteTaskInput", func() {
	It("applies defaults", func() {
		input, err := today.ConvertCompleteTaskInput(response.MustParse(`{"id": "AQID"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(input.ID).Should(Equal([]byte{1, 2, 3}))
		Expect(input.IsComplete).Should(BeTrue())
		Expect(input.ClientMutationID).Should(BeNil())
	})

	It("reads every field", func() {
		input, err := today.ConvertCompleteTaskInput(response.MustParse(
			`{"id": "AQID", "isComplete": false, "clientMutationId": "m1"}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(input.IsComplete).Should(BeFalse())
		Expect(*input.ClientMutationID).Should(Equal("m1"))
	})

	It("requires an id", func() {
		_, err := today.ConvertCompleteTaskInput(response.MustParse(`{"isComplete": true}`))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Argument "id" is required but not provided.`))
	})
})
