package graphqladapter

import (
	"taskboard/contexts/kanban/board-service/application"
	"taskboard/contexts/kanban/board-service/domain/entities"

	"github.com/graphql-go/graphql"
)

func (b *schemaBuilder) mutationType() *graphql.Object {
	errorsField := &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(b.fieldErrorType))}

	taskPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskPayload",
		Fields: graphql.Fields{
			"task":   &graphql.Field{Type: b.taskType},
			"errors": errorsField,
		},
	})
	checklistPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ChecklistPayload",
		Fields: graphql.Fields{
			"checklist": &graphql.Field{Type: b.checklistType},
			"errors":    errorsField,
		},
	})
	itemPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ChecklistItemPayload",
		Fields: graphql.Fields{
			"item":   &graphql.Field{Type: b.itemType},
			"errors": errorsField,
		},
	})
	deletePayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DeletePayload",
		Fields: graphql.Fields{
			"success":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"deletedId": &graphql.Field{Type: graphql.ID},
			"errors":    errorsField,
		},
	})
	reorderPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReorderChecklistItemsPayload",
		Fields: graphql.Fields{
			"items":     &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(b.itemType))},
			"checklist": &graphql.Field{Type: b.checklistType},
			"errors":    errorsField,
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: taskPayloadType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"status":    &graphql.ArgumentConfig{Type: b.statusEnum},
					"category":  &graphql.ArgumentConfig{Type: graphql.String},
					"priority":  &graphql.ArgumentConfig{Type: b.priorityEnum},
					"sortOrder": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: b.resolveCreateTask,
			},
			"updateTask": &graphql.Field{
				Type: taskPayloadType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"status":      &graphql.ArgumentConfig{Type: b.statusEnum},
					"category":    &graphql.ArgumentConfig{Type: graphql.String},
					"priority":    &graphql.ArgumentConfig{Type: b.priorityEnum},
					"sortOrder":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: b.resolveUpdateTask,
			},
			"deleteTask": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveDeleteTask,
			},
			"createChecklist": &graphql.Field{
				Type: checklistPayloadType,
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: b.resolveCreateChecklist,
			},
			"deleteChecklist": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"checklistId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveDeleteChecklist,
			},
			"addChecklistItem": &graphql.Field{
				Type: itemPayloadType,
				Args: graphql.FieldConfigArgument{
					"checklistId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"text":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"position":    &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: b.resolveAddChecklistItem,
			},
			"toggleChecklistItem": &graphql.Field{
				Type: itemPayloadType,
				Args: graphql.FieldConfigArgument{
					"itemId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveToggleChecklistItem,
			},
			"updateChecklistItem": &graphql.Field{
				Type: itemPayloadType,
				Args: graphql.FieldConfigArgument{
					"itemId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"text":      &graphql.ArgumentConfig{Type: graphql.String},
					"completed": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: b.resolveUpdateChecklistItem,
			},
			"deleteChecklistItem": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"itemId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveDeleteChecklistItem,
			},
			"reorderChecklistItems": &graphql.Field{
				Type:        reorderPayloadType,
				Description: "Atomically rewrite item positions to match itemIds",
				Args: graphql.FieldConfigArgument{
					"checklistId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"itemIds":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: b.resolveReorderChecklistItems,
			},
		},
	})
}

func (b *schemaBuilder) resolveCreateTask(p graphql.ResolveParams) (interface{}, error) {
	input := application.CreateTaskInput{
		Title:     stringArg(p, "title"),
		Status:    optionalStatus(p),
		Priority:  optionalPriority(p),
		Category:  optionalString(p, "category"),
		SortOrder: optionalInt(p, "sortOrder"),
	}
	task, err := b.service.CreateTask(p.Context, input)
	if err != nil {
		if payload, ok := payloadErrors(err, ""); ok {
			return taskPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := taskToDTO(task)
	return taskPayload{Task: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveUpdateTask(p graphql.ResolveParams) (interface{}, error) {
	id := stringArg(p, "id")
	input := application.UpdateTaskInput{
		Title:       optionalString(p, "title"),
		Description: optionalString(p, "description"),
		Status:      optionalStatus(p),
		Priority:    optionalPriority(p),
		Category:    optionalString(p, "category"),
		SortOrder:   optionalInt(p, "sortOrder"),
	}
	task, err := b.service.UpdateTask(p.Context, id, input)
	if err != nil {
		if payload, ok := payloadErrors(err, id); ok {
			return taskPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := taskToDTO(task)
	return taskPayload{Task: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveDeleteTask(p graphql.ResolveParams) (interface{}, error) {
	id := stringArg(p, "id")
	if err := b.service.DeleteTask(p.Context, id); err != nil {
		if payload, ok := payloadErrors(err, id); ok {
			return deletePayload{Success: false, Errors: payload}, nil
		}
		return nil, err
	}
	return deletePayload{Success: true, DeletedID: &id, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveCreateChecklist(p graphql.ResolveParams) (interface{}, error) {
	taskID := stringArg(p, "taskId")
	checklist, err := b.service.CreateChecklist(p.Context, taskID, stringArg(p, "title"))
	if err != nil {
		if payload, ok := payloadErrors(err, taskID); ok {
			return checklistPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := checklistToDTO(checklist)
	return checklistPayload{Checklist: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveDeleteChecklist(p graphql.ResolveParams) (interface{}, error) {
	checklistID := stringArg(p, "checklistId")
	if err := b.service.DeleteChecklist(p.Context, checklistID); err != nil {
		if payload, ok := payloadErrors(err, checklistID); ok {
			return deletePayload{Success: false, Errors: payload}, nil
		}
		return nil, err
	}
	return deletePayload{Success: true, DeletedID: &checklistID, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveAddChecklistItem(p graphql.ResolveParams) (interface{}, error) {
	checklistID := stringArg(p, "checklistId")
	item, err := b.service.AddChecklistItem(p.Context, checklistID, stringArg(p, "text"), optionalInt(p, "position"))
	if err != nil {
		if payload, ok := payloadErrors(err, checklistID); ok {
			return checklistItemPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := itemToDTO(item)
	return checklistItemPayload{Item: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveToggleChecklistItem(p graphql.ResolveParams) (interface{}, error) {
	itemID := stringArg(p, "itemId")
	item, err := b.service.ToggleChecklistItem(p.Context, itemID)
	if err != nil {
		if payload, ok := payloadErrors(err, itemID); ok {
			return checklistItemPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := itemToDTO(item)
	return checklistItemPayload{Item: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveUpdateChecklistItem(p graphql.ResolveParams) (interface{}, error) {
	itemID := stringArg(p, "itemId")
	input := application.UpdateChecklistItemInput{
		Text:      optionalString(p, "text"),
		Completed: optionalBool(p, "completed"),
	}
	item, err := b.service.UpdateChecklistItem(p.Context, itemID, input)
	if err != nil {
		if payload, ok := payloadErrors(err, itemID); ok {
			return checklistItemPayload{Errors: payload}, nil
		}
		return nil, err
	}
	dto := itemToDTO(item)
	return checklistItemPayload{Item: &dto, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveDeleteChecklistItem(p graphql.ResolveParams) (interface{}, error) {
	itemID := stringArg(p, "itemId")
	if err := b.service.DeleteChecklistItem(p.Context, itemID); err != nil {
		if payload, ok := payloadErrors(err, itemID); ok {
			return deletePayload{Success: false, Errors: payload}, nil
		}
		return nil, err
	}
	return deletePayload{Success: true, DeletedID: &itemID, Errors: []fieldErrorDTO{}}, nil
}

func (b *schemaBuilder) resolveReorderChecklistItems(p graphql.ResolveParams) (interface{}, error) {
	checklistID := stringArg(p, "checklistId")
	itemIDs := idListArg(p, "itemIds")

	result, err := b.service.ReorderChecklistItems(p.Context, checklistID, itemIDs)
	if err != nil {
		if payload, ok := payloadErrors(err, checklistID); ok {
			return reorderPayload{Errors: payload}, nil
		}
		return nil, err
	}

	items := make([]checklistItemDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, itemToDTO(item))
	}
	checklist := checklistToDTO(result.Checklist)
	return reorderPayload{Items: items, Checklist: &checklist, Errors: []fieldErrorDTO{}}, nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}

func optionalString(p graphql.ResolveParams, name string) *string {
	if value, ok := p.Args[name].(string); ok {
		return &value
	}
	return nil
}

func optionalInt(p graphql.ResolveParams, name string) *int {
	if value, ok := p.Args[name].(int); ok {
		return &value
	}
	return nil
}

func optionalBool(p graphql.ResolveParams, name string) *bool {
	if value, ok := p.Args[name].(bool); ok {
		return &value
	}
	return nil
}

func optionalStatus(p graphql.ResolveParams) *entities.Status {
	if value, ok := p.Args["status"].(entities.Status); ok {
		return &value
	}
	return nil
}

func optionalPriority(p graphql.ResolveParams) *entities.Priority {
	if value, ok := p.Args["priority"].(entities.Priority); ok {
		return &value
	}
	return nil
}

func idListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, value := range raw {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
