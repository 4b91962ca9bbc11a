// Package graphqladapter binds the board service to its GraphQL schema:
// queries and mutations over tasks, checklists, and checklist items, with
// typed error payloads instead of transport-level failures for caller
// mistakes.
package graphqladapter

import (
	"errors"
	"log/slog"
	"time"

	"taskboard/contexts/kanban/board-service/application"
	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

type schemaBuilder struct {
	service application.Service
	logger  *slog.Logger

	dateTime     *graphql.Scalar
	statusEnum   *graphql.Enum
	priorityEnum *graphql.Enum

	fieldErrorType *graphql.Object
	itemType       *graphql.Object
	checklistType  *graphql.Object
	taskType       *graphql.Object
}

// New builds the executable schema around the given service.
func New(service application.Service, logger *slog.Logger) (graphql.Schema, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &schemaBuilder{service: service, logger: logger}

	b.buildScalars()
	b.buildEnums()
	b.buildObjectTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}

func (b *schemaBuilder) buildScalars() {
	b.dateTime = graphql.NewScalar(graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "RFC 3339 timestamp",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.UTC().Format(time.RFC3339)
			case *time.Time:
				if v == nil {
					return nil
				}
				return v.UTC().Format(time.RFC3339)
			default:
				return nil
			}
		},
		ParseValue: func(value interface{}) interface{} {
			raw, ok := value.(string)
			if !ok {
				return nil
			}
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil
			}
			return parsed
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			lit, ok := valueAST.(*ast.StringValue)
			if !ok {
				return nil
			}
			parsed, err := time.Parse(time.RFC3339, lit.Value)
			if err != nil {
				return nil
			}
			return parsed
		},
	})
}

func (b *schemaBuilder) buildEnums() {
	b.statusEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "TaskStatusEnum",
		Values: graphql.EnumValueConfigMap{
			"TODO":    &graphql.EnumValueConfig{Value: entities.StatusTodo, Description: "Not yet started"},
			"DOING":   &graphql.EnumValueConfig{Value: entities.StatusDoing, Description: "In progress"},
			"WAITING": &graphql.EnumValueConfig{Value: entities.StatusWaiting, Description: "Blocked on someone else"},
			"DONE":    &graphql.EnumValueConfig{Value: entities.StatusDone, Description: "Completed"},
		},
	})
	b.priorityEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "TaskPriorityEnum",
		Values: graphql.EnumValueConfigMap{
			"P1": &graphql.EnumValueConfig{Value: entities.PriorityP1, Description: "Do first"},
			"P2": &graphql.EnumValueConfig{Value: entities.PriorityP2, Description: "Schedule"},
			"P3": &graphql.EnumValueConfig{Value: entities.PriorityP3, Description: "Quick win"},
			"P4": &graphql.EnumValueConfig{Value: entities.PriorityP4, Description: "Backlog"},
		},
	})
}

func (b *schemaBuilder) buildObjectTypes() {
	b.fieldErrorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "FieldError",
		Fields: graphql.Fields{
			"field":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	b.itemType = graphql.NewObject(graphql.ObjectConfig{
		Name: "ChecklistItem",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"checklistId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"completed":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"position":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":   &graphql.Field{Type: b.dateTime},
			"updatedAt":   &graphql.Field{Type: b.dateTime},
		},
	})

	b.checklistType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Checklist",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"taskId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: b.dateTime},
			"updatedAt": &graphql.Field{Type: b.dateTime},
			"items": &graphql.Field{
				Type:        graphql.NewList(graphql.NewNonNull(b.itemType)),
				Description: "Items ordered by position",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					src, ok := checklistSource(p.Source)
					if !ok {
						return nil, nil
					}
					items, err := b.service.ListChecklistItems(p.Context, src.ID)
					if err != nil {
						return nil, err
					}
					dtos := make([]checklistItemDTO, 0, len(items))
					for _, item := range items {
						dtos = append(dtos, itemToDTO(item))
					}
					return dtos, nil
				},
			},
			"progress": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "Completion percentage, 0-100",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					src, ok := checklistSource(p.Source)
					if !ok {
						return 0, nil
					}
					return b.service.ChecklistProgress(p.Context, src.ID)
				},
			},
		},
	})

	b.taskType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":      &graphql.Field{Type: graphql.NewNonNull(b.statusEnum)},
			"priority":    &graphql.Field{Type: graphql.NewNonNull(b.priorityEnum)},
			"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"sortOrder":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":   &graphql.Field{Type: b.dateTime},
			"updatedAt":   &graphql.Field{Type: b.dateTime},
		},
	})

	b.taskType.AddFieldConfig("checklists", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(b.checklistType)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := taskSource(p.Source)
			if !ok {
				return nil, nil
			}
			checklists, err := b.service.ListChecklists(p.Context, src.ID)
			if err != nil {
				return nil, err
			}
			dtos := make([]checklistDTO, 0, len(checklists))
			for _, checklist := range checklists {
				dtos = append(dtos, checklistToDTO(checklist))
			}
			return dtos, nil
		},
	})

	b.checklistType.AddFieldConfig("task", &graphql.Field{
		Type: b.taskType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			src, ok := checklistSource(p.Source)
			if !ok {
				return nil, nil
			}
			task, err := b.service.GetTask(p.Context, src.TaskID)
			if err != nil {
				return nil, err
			}
			return taskToDTO(task), nil
		},
	})
}

func (b *schemaBuilder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allTasks": &graphql.Field{
				Type:        graphql.NewList(graphql.NewNonNull(b.taskType)),
				Description: "All tasks, newest first, optionally filtered by status",
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: b.statusEnum},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := ports.TaskFilter{}
					if status, ok := p.Args["status"].(entities.Status); ok {
						filter.Status = &status
					}
					tasks, err := b.service.ListTasks(p.Context, filter)
					if err != nil {
						return nil, err
					}
					dtos := make([]taskDTO, 0, len(tasks))
					for _, task := range tasks {
						dtos = append(dtos, taskToDTO(task))
					}
					return dtos, nil
				},
			},
			"task": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					task, err := b.service.GetTask(p.Context, id)
					if err != nil {
						if errors.Is(err, domainerrors.ErrTaskNotFound) {
							return nil, nil
						}
						return nil, err
					}
					return taskToDTO(task), nil
				},
			},
			"checklist": &graphql.Field{
				Type: b.checklistType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					checklist, err := b.service.GetChecklist(p.Context, id)
					if err != nil {
						if errors.Is(err, domainerrors.ErrChecklistNotFound) {
							return nil, nil
						}
						return nil, err
					}
					return checklistToDTO(checklist), nil
				},
			},
		},
	})
}
