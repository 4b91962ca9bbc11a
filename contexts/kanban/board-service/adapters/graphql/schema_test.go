package graphqladapter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskboard/contexts/kanban/board-service/adapters/memory"
	"taskboard/contexts/kanban/board-service/application"

	"github.com/graphql-go/graphql"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type testIDs struct {
	next int
}

func (g *testIDs) NewID() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	store := memory.NewStore()
	service := application.Service{
		Tasks:      store,
		Checklists: store,
		Items:      store,
		Clock:      &testClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		IDs:        &testIDs{},
	}
	schema, err := New(service, nil)
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return schema
}

func execute(t *testing.T, schema graphql.Schema, query string, variables map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        context.Background(),
	})
	if result.HasErrors() {
		t.Fatalf("unexpected graphql errors: %v", result.Errors)
	}
	data, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %#v", result.Data)
	}
	return data
}

func child(t *testing.T, data map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	value, ok := data[key].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object at %q, got %#v", key, data[key])
	}
	return value
}

func list(t *testing.T, data map[string]interface{}, key string) []interface{} {
	t.Helper()
	value, ok := data[key].([]interface{})
	if !ok {
		t.Fatalf("expected list at %q, got %#v", key, data[key])
	}
	return value
}

const createTaskMutation = `
mutation CreateTask($title: String!, $status: TaskStatusEnum, $category: String) {
	createTask(title: $title, status: $status, category: $category) {
		task { id title status priority category sortOrder }
		errors { field message }
	}
}`

func TestCreateTaskMutationDefaults(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, createTaskMutation, map[string]interface{}{"title": "Ship it"})
	payload := child(t, data, "createTask")
	if errs := list(t, payload, "errors"); len(errs) != 0 {
		t.Fatalf("expected no payload errors, got %v", errs)
	}

	task := child(t, payload, "task")
	if task["status"] != "TODO" {
		t.Fatalf("expected default status TODO, got %v", task["status"])
	}
	if task["priority"] != "P4" {
		t.Fatalf("expected default priority P4, got %v", task["priority"])
	}
	if task["sortOrder"] != 0 {
		t.Fatalf("expected sort order 0 in empty bucket, got %v", task["sortOrder"])
	}
}

func TestCreateTaskMutationCategoryPrefix(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, createTaskMutation, map[string]interface{}{
		"title":    "Docs",
		"category": "docs",
	})
	task := child(t, child(t, data, "createTask"), "task")
	if task["category"] != "#docs" {
		t.Fatalf("expected #docs, got %v", task["category"])
	}
}

func TestCreateTaskMutationEmptyTitle(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, createTaskMutation, map[string]interface{}{"title": "   "})
	payload := child(t, data, "createTask")
	if payload["task"] != nil {
		t.Fatalf("expected nil task, got %v", payload["task"])
	}
	errs := list(t, payload, "errors")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	first := errs[0].(map[string]interface{})
	if first["field"] != "title" || first["message"] != "Title cannot be empty" {
		t.Fatalf("unexpected error payload: %v", first)
	}
}

func TestAllTasksQueryStatusFilter(t *testing.T) {
	schema := newTestSchema(t)

	for _, spec := range []struct{ title, status string }{
		{"First", "TODO"},
		{"Second", "DONE"},
		{"Third", "TODO"},
	} {
		execute(t, schema, createTaskMutation, map[string]interface{}{
			"title":  spec.title,
			"status": spec.status,
		})
	}

	data := execute(t, schema, `
query {
	allTasks(status: TODO) { title status }
}`, nil)
	tasks := list(t, data, "allTasks")
	if len(tasks) != 2 {
		t.Fatalf("expected 2 TODO tasks, got %d", len(tasks))
	}
	// Newest first.
	if tasks[0].(map[string]interface{})["title"] != "Third" {
		t.Fatalf("expected Third first, got %v", tasks[0])
	}
}

func TestUpdateTaskMutationNotFound(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, `
mutation {
	updateTask(id: "ghost", title: "New") {
		task { id }
		errors { field message }
	}
}`, nil)
	payload := child(t, data, "updateTask")
	errs := list(t, payload, "errors")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	first := errs[0].(map[string]interface{})
	if first["field"] != "id" || first["message"] != "Task ghost not found" {
		t.Fatalf("unexpected error payload: %v", first)
	}
}

func TestDeleteTaskMutation(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, createTaskMutation, map[string]interface{}{"title": "Victim"})
	taskID := child(t, child(t, data, "createTask"), "task")["id"].(string)

	data = execute(t, schema, `
mutation DeleteTask($id: ID!) {
	deleteTask(id: $id) { success deletedId errors { field message } }
}`, map[string]interface{}{"id": taskID})
	payload := child(t, data, "deleteTask")
	if payload["success"] != true || payload["deletedId"] != taskID {
		t.Fatalf("unexpected delete payload: %v", payload)
	}

	data = execute(t, schema, `query Task($id: ID!) { task(id: $id) { id } }`,
		map[string]interface{}{"id": taskID})
	if data["task"] != nil {
		t.Fatalf("expected deleted task to resolve null, got %v", data["task"])
	}
}

func checklistFixture(t *testing.T, schema graphql.Schema) (string, []string) {
	t.Helper()

	data := execute(t, schema, createTaskMutation, map[string]interface{}{"title": "Task"})
	taskID := child(t, child(t, data, "createTask"), "task")["id"].(string)

	data = execute(t, schema, `
mutation CreateChecklist($taskId: ID!) {
	createChecklist(taskId: $taskId, title: "Steps") {
		checklist { id }
		errors { field message }
	}
}`, map[string]interface{}{"taskId": taskID})
	checklistID := child(t, child(t, data, "createChecklist"), "checklist")["id"].(string)

	itemIDs := make([]string, 0, 3)
	for _, text := range []string{"A", "B", "C"} {
		data = execute(t, schema, `
mutation AddItem($checklistId: ID!, $text: String!) {
	addChecklistItem(checklistId: $checklistId, text: $text) {
		item { id position }
		errors { field message }
	}
}`, map[string]interface{}{"checklistId": checklistID, "text": text})
		item := child(t, child(t, data, "addChecklistItem"), "item")
		itemIDs = append(itemIDs, item["id"].(string))
	}
	return checklistID, itemIDs
}

const reorderMutation = `
mutation Reorder($checklistId: ID!, $itemIds: [ID!]!) {
	reorderChecklistItems(checklistId: $checklistId, itemIds: $itemIds) {
		items { id text position }
		checklist { id }
		errors { field message }
	}
}`

func TestReorderChecklistItemsMutation(t *testing.T) {
	schema := newTestSchema(t)
	checklistID, itemIDs := checklistFixture(t, schema)

	data := execute(t, schema, reorderMutation, map[string]interface{}{
		"checklistId": checklistID,
		"itemIds":     []interface{}{itemIDs[2], itemIDs[0], itemIDs[1]},
	})
	payload := child(t, data, "reorderChecklistItems")
	if errs := list(t, payload, "errors"); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	items := list(t, payload, "items")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for index, wantText := range []string{"C", "A", "B"} {
		item := items[index].(map[string]interface{})
		if item["text"] != wantText || item["position"] != index {
			t.Fatalf("expected %s at %d, got %v", wantText, index, item)
		}
	}
	if child(t, payload, "checklist")["id"] != checklistID {
		t.Fatalf("expected owning checklist in payload")
	}
}

func TestReorderChecklistItemsMutationForeignID(t *testing.T) {
	schema := newTestSchema(t)
	checklistID, itemIDs := checklistFixture(t, schema)

	data := execute(t, schema, reorderMutation, map[string]interface{}{
		"checklistId": checklistID,
		"itemIds":     []interface{}{itemIDs[0], itemIDs[1], "foreign"},
	})
	payload := child(t, data, "reorderChecklistItems")
	errs := list(t, payload, "errors")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	first := errs[0].(map[string]interface{})
	if first["field"] != "itemIds" {
		t.Fatalf("expected itemIds error, got %v", first)
	}

	// Positions are untouched after the rejected call.
	data = execute(t, schema, `
query Checklist($id: ID!) {
	checklist(id: $id) { items { id position } }
}`, map[string]interface{}{"id": checklistID})
	items := list(t, child(t, data, "checklist"), "items")
	for index, raw := range items {
		item := raw.(map[string]interface{})
		if item["id"] != itemIDs[index] || item["position"] != index {
			t.Fatalf("expected %s at %d, got %v", itemIDs[index], index, item)
		}
	}
}

func TestReorderChecklistItemsMutationUnknownChecklist(t *testing.T) {
	schema := newTestSchema(t)

	data := execute(t, schema, reorderMutation, map[string]interface{}{
		"checklistId": "ghost",
		"itemIds":     []interface{}{"a"},
	})
	payload := child(t, data, "reorderChecklistItems")
	errs := list(t, payload, "errors")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	first := errs[0].(map[string]interface{})
	if first["field"] != "checklistId" || first["message"] != "Checklist ghost not found" {
		t.Fatalf("unexpected error payload: %v", first)
	}
}

func TestChecklistProgressField(t *testing.T) {
	schema := newTestSchema(t)
	checklistID, itemIDs := checklistFixture(t, schema)

	execute(t, schema, `
mutation Toggle($itemId: ID!) {
	toggleChecklistItem(itemId: $itemId) { item { completed } errors { field message } }
}`, map[string]interface{}{"itemId": itemIDs[0]})

	data := execute(t, schema, `
query Checklist($id: ID!) {
	checklist(id: $id) { progress }
}`, map[string]interface{}{"id": checklistID})
	if progress := child(t, data, "checklist")["progress"]; progress != 33 {
		t.Fatalf("expected 33 progress, got %v", progress)
	}
}

func TestTaskChecklistsTraversal(t *testing.T) {
	schema := newTestSchema(t)
	checklistID, _ := checklistFixture(t, schema)

	data := execute(t, schema, `
query {
	allTasks {
		id
		checklists { id items { text position } }
	}
}`, nil)
	tasks := list(t, data, "allTasks")
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	checklists := list(t, tasks[0].(map[string]interface{}), "checklists")
	if len(checklists) != 1 {
		t.Fatalf("expected 1 checklist, got %d", len(checklists))
	}
	checklist := checklists[0].(map[string]interface{})
	if checklist["id"] != checklistID {
		t.Fatalf("expected checklist %s, got %v", checklistID, checklist["id"])
	}
	items := list(t, checklist, "items")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}
