package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/whatsx/formkit/pkg/importer"
	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/orchestrator"
	"github.com/whatsx/formkit/pkg/templates"
	"github.com/whatsx/formkit/pkg/wizard"
)

func main() {
	formPath := flag.String("form", "", "form definition file (YAML)")
	templateID := flag.String("template", "", "catalog template id to instantiate")
	listTemplates := flag.Bool("list-templates", false, "list catalog templates and exit")
	runWizard := flag.Bool("wizard", false, "build the form interactively")
	importPath := flag.String("import", "", "OpenAPI document to import fields from")
	operationID := flag.String("operation", "", "operation id to import (with -import)")
	rendererName := flag.String("renderer", "popup", "renderer to use: popup or aiwidget")
	token := flag.String("token", "", "fixed export token (random if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	if *listTemplates {
		printTemplates()
		return
	}

	form, err := resolveForm(ctx, *formPath, *importPath, *operationID, *runWizard)
	if err != nil {
		log.Fatalf("Failed to resolve form: %v", err)
	}
	if form == nil && *templateID == "" {
		log.Fatal("one of -form, -template, -wizard or -import is required")
	}

	gen := orchestrator.New()
	outputHTML, err := gen.Generate(ctx, orchestrator.Request{
		Form:       form,
		TemplateID: *templateID,
		Renderer:   *rendererName,
		Token:      *token,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(outputFileName(*output), outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", outputFileName(*output))
	} else {
		fmt.Println(string(outputHTML))
	}
}

func resolveForm(ctx context.Context, formPath, importPath, operationID string, runWizard bool) (*model.Form, error) {
	switch {
	case runWizard:
		form, err := wizard.New().Run(ctx)
		if err != nil {
			return nil, err
		}
		return &form, nil
	case importPath != "":
		if operationID == "" {
			return nil, fmt.Errorf("-import requires -operation")
		}
		data, err := os.ReadFile(importPath)
		if err != nil {
			return nil, err
		}
		form, err := importer.New().Form(ctx, data, operationID)
		if err != nil {
			return nil, err
		}
		return &form, nil
	case formPath != "":
		form, err := model.DecodeFile(formPath)
		if err != nil {
			return nil, err
		}
		return &form, nil
	}
	return nil, nil
}

func printTemplates() {
	catalog := templates.Default()
	for _, tpl := range catalog.List() {
		fmt.Printf("%-20s %-12s %s\n", tpl.ID, tpl.Category, tpl.Name)
	}
}

// outputFileName appends .html when the target has no extension, so
// "contact" becomes "contact.html" but explicit names pass through.
func outputFileName(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	if strings.Contains(base, ".") {
		return path
	}
	return path + ".html"
}
