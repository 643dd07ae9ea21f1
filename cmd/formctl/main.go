// Command formctl drives an open-form server from the terminal: managing
// local drafts, creating forms from them, and filling in shared forms.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/pkg/builder"
	"github.com/monosijkayal/open-form/pkg/client"
	"github.com/monosijkayal/open-form/pkg/respond"
)

const defaultServer = "http://localhost:8080"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "draft":
		err = runDraft(os.Args[2:])
	case "create":
		err = runCreate(ctx, os.Args[2:])
	case "get":
		err = runGet(ctx, os.Args[2:])
	case "share":
		err = runShare(ctx, os.Args[2:])
	case "respond":
		err = runRespond(ctx, os.Args[2:])
	case "responses":
		err = runResponses(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: formctl <command> [flags]

commands:
  draft      create a new local draft or list existing ones
  create     create a form on the server from a local draft
  get        fetch a form by formId (includes editKey)
  share      fetch the public view of a form by shareId
  respond    submit answers to a shared form
  responses  list responses submitted for a form`)
}

func runDraft(args []string) error {
	fs := flag.NewFlagSet("draft", flag.ExitOnError)
	dir := fs.String("dir", "drafts", "draft directory")
	list := fs.Bool("list", false, "list stored drafts instead of creating one")
	fs.Parse(args)

	store, err := builder.NewStore(*dir)
	if err != nil {
		return err
	}

	if *list {
		ids, err := store.List()
		if err != nil {
			return err
		}
		for _, id := range ids {
			d, err := store.Load(id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %q (%d questions)\n", id, d.Title, len(d.Questions))
		}
		return nil
	}

	d := builder.NewDraft()
	if err := store.Save(d); err != nil {
		return err
	}
	fmt.Printf("created draft %s\n", d.ID)
	return nil
}

func runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	server := fs.String("server", defaultServer, "server base URL")
	dir := fs.String("dir", "drafts", "draft directory")
	draftID := fs.String("draft", "", "draft id to create the form from")
	fs.Parse(args)

	if *draftID == "" {
		return fmt.Errorf("create: -draft is required")
	}

	store, err := builder.NewStore(*dir)
	if err != nil {
		return err
	}
	d, err := store.Load(*draftID)
	if err != nil {
		return err
	}

	api := client.New(*server)
	created, err := api.CreateForm(ctx, client.CreateFormPayload{
		Title:          d.Title,
		Description:    d.Description,
		HeaderImageURL: d.HeaderImageURL,
		Questions:      d.Questions,
	})
	if err != nil {
		return err
	}

	fmt.Printf("formId:   %s\n", created.FormID)
	fmt.Printf("editKey:  %s\n", created.EditKey)
	fmt.Printf("shareId:  %s\n", created.ShareID)
	fmt.Printf("shareUrl: %s\n", created.ShareURL)
	return nil
}

func runGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	server := fs.String("server", defaultServer, "server base URL")
	id := fs.String("id", "", "formId")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("get: -id is required")
	}

	form, err := client.New(*server).GetForm(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(form)
}

func runShare(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ExitOnError)
	server := fs.String("server", defaultServer, "server base URL")
	id := fs.String("id", "", "shareId")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("share: -id is required")
	}

	form, err := client.New(*server).GetSharedForm(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(form)
}

// answerFlags collects repeated -answer questionId=value pairs
type answerFlags []model.Answer

func (a *answerFlags) String() string { return fmt.Sprintf("%d answers", len(*a)) }

func (a *answerFlags) Set(s string) error {
	qid, value, ok := strings.Cut(s, "=")
	if !ok || qid == "" {
		return fmt.Errorf("answer must be questionId=value, got %q", s)
	}
	*a = append(*a, model.Answer{QuestionID: qid, Value: model.NewAnswerValue(value)})
	return nil
}

func runRespond(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("respond", flag.ExitOnError)
	server := fs.String("server", defaultServer, "server base URL")
	shareID := fs.String("share", "", "shareId of the form")
	var answers answerFlags
	fs.Var(&answers, "answer", "answer as questionId=value (repeatable)")
	fs.Parse(args)

	if *shareID == "" {
		return fmt.Errorf("respond: -share is required")
	}

	session := respond.NewSession(client.New(*server), *shareID)
	if err := session.Load(ctx); err != nil {
		return err
	}
	for _, ans := range answers {
		if err := session.SetAnswer(ans.QuestionID, ans.Value); err != nil {
			return err
		}
	}
	if err := session.Submit(ctx); err != nil {
		return err
	}

	fmt.Printf("submitted %d answers to %q\n", len(answers), session.Form().Title)
	return nil
}

func runResponses(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("responses", flag.ExitOnError)
	server := fs.String("server", defaultServer, "server base URL")
	id := fs.String("id", "", "formId")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("responses: -id is required")
	}

	responses, err := client.New(*server).ListResponses(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(responses)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
