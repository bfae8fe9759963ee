package client

const taskFields = `
	id
	title
	description
	priority
	dueDate
	tags
	completed
	projectId
	createdAt
	updatedAt
`

const projectFields = `
	id
	name
	color
	icon
	createdAt
	updatedAt
`

const (
	queryTasks = `query GetTasks { tasks {` + taskFields + `} }`

	queryTask = `query GetTask($id: String!) { task(id: $id) {` + taskFields + `} }`

	querySearchTasks = `query SearchTasksByTitle($title: String!) { searchTasksByTitle(title: $title) {` + taskFields + `} }`

	queryTaskStats = `query TaskStats { taskStats { total active completed today overdue upcoming highPriority } }`

	mutationCreateTask = `mutation CreateTask($createTaskInput: CreateTaskInput!) { createTask(createTaskInput: $createTaskInput) {` + taskFields + `} }`

	mutationUpdateTask = `mutation UpdateTask($updateTaskInput: UpdateTaskInput!) { updateTask(updateTaskInput: $updateTaskInput) {` + taskFields + `} }`

	mutationRemoveTask = `mutation RemoveTask($id: String!) { removeTask(id: $id) {` + taskFields + `} }`

	queryProjects = `query GetProjects { projects {` + projectFields + `} }`

	queryProject = `query GetProject($id: String!) { project(id: $id) {` + projectFields + `} }`

	mutationCreateProject = `mutation CreateProject($input: CreateProjectInput!) { createProject(input: $input) {` + projectFields + `} }`

	mutationDeleteProject = `mutation DeleteProject($id: String!) { deleteProject(id: $id) {` + projectFields + `} }`
)
