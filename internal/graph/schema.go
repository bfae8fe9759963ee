// Package graph exposes the project and task services over GraphQL.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/rpggio/busybee/internal/domain/task"
)

var priorityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Priority",
	Values: graphql.EnumValueConfigMap{
		string(task.PriorityLow):    &graphql.EnumValueConfig{Value: string(task.PriorityLow)},
		string(task.PriorityMedium): &graphql.EnumValueConfig{Value: string(task.PriorityMedium)},
		string(task.PriorityHigh):   &graphql.EnumValueConfig{Value: string(task.PriorityHigh)},
	},
})

var projectType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Project",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"color":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"icon":      &graphql.Field{Type: graphql.String},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var taskType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Task",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"priority":    &graphql.Field{Type: graphql.NewNonNull(priorityEnum)},
		"dueDate":     &graphql.Field{Type: graphql.DateTime},
		"tags":        &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"completed":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"projectId":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var taskStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskStats",
	Fields: graphql.Fields{
		"total":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"active":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completed":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"today":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"overdue":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"upcoming":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"highPriority": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var createProjectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"color": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"icon":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priority":    &graphql.InputObjectFieldConfig{Type: priorityEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"tags":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"projectId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"title":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"clearDescription": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"priority":         &graphql.InputObjectFieldConfig{Type: priorityEnum},
		"dueDate":          &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"clearDueDate":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"tags":             &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"projectId":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"completed":        &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
}

// NewSchema builds the schema with every field resolved by r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"projects": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(projectType))),
				Resolve: r.projects,
			},
			"project": &graphql.Field{
				Type:    projectType,
				Args:    idArgs(),
				Resolve: r.project,
			},
			"tasks": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Resolve: r.tasks,
			},
			"task": &graphql.Field{
				Type:    graphql.NewNonNull(taskType),
				Args:    idArgs(),
				Resolve: r.task,
			},
			"searchTasksByTitle": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.searchTasksByTitle,
			},
			"taskStats": &graphql.Field{
				Type:    graphql.NewNonNull(taskStatsType),
				Resolve: r.taskStats,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createProject": &graphql.Field{
				Type: graphql.NewNonNull(projectType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProjectInput)},
				},
				Resolve: r.createProject,
			},
			"deleteProject": &graphql.Field{
				Type:    graphql.NewNonNull(projectType),
				Args:    idArgs(),
				Resolve: r.deleteProject,
			},
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"createTaskInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: r.createTask,
			},
			"updateTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"updateTaskInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: r.updateTask,
			},
			"removeTask": &graphql.Field{
				Type:    graphql.NewNonNull(taskType),
				Args:    idArgs(),
				Resolve: r.removeTask,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
