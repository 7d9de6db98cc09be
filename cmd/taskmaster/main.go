package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"taskmaster/internal/api"
	"taskmaster/internal/auth"
	"taskmaster/internal/board"
	"taskmaster/internal/config"
	"taskmaster/internal/model"
	"taskmaster/internal/store"
)

var (
	email       = flag.String("email", "", "account email")
	password    = flag.String("password", "", "account password")
	username    = flag.String("username", "", "account username (register)")
	title       = flag.String("title", "", "task title")
	description = flag.String("description", "", "task description")
	priority    = flag.String("priority", "", "task priority (Low|Medium|High|Urgent)")
	status      = flag.String("status", "", "task status column")
	due         = flag.String("due", "", "due date (YYYY-MM-DD)")
)

const usage = `taskmaster <command> [flags]

Commands:
  login                      authenticate (--email, --password)
  register                   create an account (--username, --email, --password)
  logout                     drop the stored session
  board                      fetch tasks and render the board
  show <id>                  fetch one task with its comments
  add                        create a task (--title, optional flags)
  edit <id>                  update a task (changed flags only)
  move <id> <from> <to>      move a task between columns
  comment <id> <text>        comment on a task
  rm <id>                    delete a task
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	session := auth.NewSession()
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, session)
	tasks := store.NewStore(client, session)
	drags := board.NewDragHandler(tasks, tasks)

	restoreSession(cfg.SessionFile, session)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+time.Second)
	defer cancel()

	switch cmd := flag.Arg(0); cmd {
	case "login":
		runLogin(ctx, client, session, cfg.SessionFile)
	case "register":
		runRegister(ctx, client, session, cfg.SessionFile)
	case "logout":
		session.Clear()
		removeSessionFile(cfg.SessionFile)
		fmt.Println("Logged out.")
	case "board":
		runBoard(ctx, tasks)
	case "show":
		runShow(ctx, tasks, flag.Arg(1))
	case "add":
		runAdd(ctx, tasks)
	case "edit":
		runEdit(ctx, tasks, flag.Arg(1))
	case "move":
		runMove(ctx, tasks, drags)
	case "comment":
		runComment(ctx, tasks, flag.Arg(1), flag.Arg(2))
	case "rm":
		runDelete(ctx, tasks, flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, client *api.Client, session *auth.Session, path string) {
	if *email == "" || *password == "" {
		log.Fatal("login requires --email and --password")
	}
	creds, err := client.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %s", api.Message(err, "invalid credentials"))
	}
	session.Establish(&creds.User, creds.Token)
	saveSession(path, creds)
	fmt.Printf("Logged in as %s.\n", creds.User.Username)
}

func runRegister(ctx context.Context, client *api.Client, session *auth.Session, path string) {
	if *username == "" || *email == "" || *password == "" {
		log.Fatal("register requires --username, --email and --password")
	}
	creds, err := client.Register(ctx, *username, *email, *password)
	if err != nil {
		log.Fatalf("registration failed: %s", api.Message(err, "registration rejected"))
	}
	session.Establish(&creds.User, creds.Token)
	saveSession(path, creds)
	fmt.Printf("Registered and logged in as %s.\n", creds.User.Username)
}

func runBoard(ctx context.Context, tasks *store.Store) {
	if err := tasks.FetchTasks(ctx); err != nil {
		log.Fatalf("%s", tasks.Err())
	}
	fmt.Println(renderBoard(board.Group(tasks.Tasks())))
}

func runShow(ctx context.Context, tasks *store.Store, id string) {
	if id == "" {
		log.Fatal("show requires a task id")
	}
	task := tasks.FetchTaskByID(ctx, id)
	if task == nil {
		if msg := tasks.Err(); msg != "" {
			log.Fatalf("%s", msg)
		}
		log.Fatal("not logged in")
	}
	fmt.Println(renderTask(task))
}

func runAdd(ctx context.Context, tasks *store.Store) {
	draft := model.TaskDraft{
		Title:       *title,
		Description: *description,
		Status:      model.Status(*status),
		Priority:    model.Priority(*priority),
		DueDate:     parseDue(*due),
	}
	if !tasks.CreateTask(ctx, draft) {
		log.Fatalf("%s", tasks.Err())
	}
	fmt.Println("Task created.")
}

func runEdit(ctx context.Context, tasks *store.Store, id string) {
	if id == "" {
		log.Fatal("edit requires a task id")
	}
	update := model.TaskUpdate{}
	if flag.CommandLine.Changed("title") {
		update.Title = title
	}
	if flag.CommandLine.Changed("description") {
		update.Description = description
	}
	if flag.CommandLine.Changed("status") {
		s := model.Status(*status)
		update.Status = &s
	}
	if flag.CommandLine.Changed("priority") {
		p := model.Priority(*priority)
		update.Priority = &p
	}
	if flag.CommandLine.Changed("due") {
		update.DueDate = parseDue(*due)
	}
	if !tasks.UpdateTask(ctx, id, update) {
		log.Fatalf("%s", tasks.Err())
	}
	fmt.Println("Task updated.")
}

func runMove(ctx context.Context, tasks *store.Store, drags *board.DragHandler) {
	id, from, to := flag.Arg(1), flag.Arg(2), flag.Arg(3)
	if id == "" || from == "" || to == "" {
		log.Fatal("move requires <id> <from> <to>")
	}
	if err := tasks.FetchTasks(ctx); err != nil {
		log.Fatalf("%s", tasks.Err())
	}
	gesture := board.Gesture{
		TaskID:      id,
		Source:      model.Status(from),
		Destination: model.Status(to),
	}
	if !drags.HandleDrop(ctx, gesture) {
		if msg := tasks.Err(); msg != "" {
			log.Fatalf("%s", msg)
		}
		fmt.Println("Nothing to move.")
		return
	}
	fmt.Printf("Moved %s to %s.\n", id, to)
}

func runComment(ctx context.Context, tasks *store.Store, id, content string) {
	if id == "" || content == "" {
		log.Fatal("comment requires <id> <text>")
	}
	comment := tasks.AddComment(ctx, id, content)
	if comment == nil {
		log.Fatalf("%s", tasks.Err())
	}
	fmt.Println("Comment added.")
}

func runDelete(ctx context.Context, tasks *store.Store, id string) {
	if id == "" {
		log.Fatal("rm requires a task id")
	}
	if !tasks.DeleteTask(ctx, id) {
		log.Fatalf("%s", tasks.Err())
	}
	fmt.Println("Task deleted.")
}

func parseDue(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("invalid --due %q, want YYYY-MM-DD", value)
	}
	return &d
}
