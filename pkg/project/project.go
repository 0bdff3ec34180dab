// Package project parses the URL document naming the artifacts to score:
// one project per line as a comma-separated triple of code repository,
// dataset, and model URLs.
package project

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// Code is a GitHub code repository reference.
type Code struct {
	Link  string
	Owner string
	Name  string
}

// Dataset is a Hugging Face dataset reference.
type Dataset struct {
	Link      string
	Namespace string
	Repo      string
}

// Model is a Hugging Face model reference.
type Model struct {
	Link      string
	Namespace string
	Repo      string
	Rev       string
}

// Group ties the three artifacts of one project together. Code and Dataset
// may be absent; Model is required.
type Group struct {
	Code    *Code
	Dataset *Dataset
	Model   *Model
}

// ParseFile reads a URL document from path.
func ParseFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one `code_url,dataset_url,model_url` triple per line. Blank
// lines are ignored; a line with no valid model URL is an error, since
// nothing can be scored without one.
func Parse(r io.Reader) ([]Group, error) {
	var groups []Group
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("project: line %d: want 3 comma-separated URLs, got %d", lineNo, len(parts))
		}

		var group Group
		if link := strings.TrimSpace(parts[0]); link != "" {
			code, err := parseGitHubURL(link)
			if err != nil {
				return nil, fmt.Errorf("project: line %d: %w", lineNo, err)
			}
			group.Code = code
		}
		if link := strings.TrimSpace(parts[1]); link != "" {
			dataset, err := parseDatasetURL(link)
			if err != nil {
				return nil, fmt.Errorf("project: line %d: %w", lineNo, err)
			}
			group.Dataset = dataset
		}
		link := strings.TrimSpace(parts[2])
		if link == "" {
			return nil, fmt.Errorf("project: line %d: model URL is required", lineNo)
		}
		model, err := parseModelURL(link)
		if err != nil {
			return nil, fmt.Errorf("project: line %d: %w", lineNo, err)
		}
		group.Model = model

		groups = append(groups, group)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("project: reading url document: %w", err)
	}
	return groups, nil
}

// parseModelURL splits a Hugging Face model URL into namespace, repo, and an
// optional /tree/<rev> revision.
func parseModelURL(link string) (*Model, error) {
	parts, err := pathParts(link)
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid Hugging Face model URL %q", link)
	}
	model := &Model{Link: link, Namespace: parts[0], Repo: parts[1], Rev: "main"}
	if len(parts) >= 4 && parts[2] == "tree" {
		model.Rev = parts[3]
	}
	return model, nil
}

// parseDatasetURL accepts both namespaced and canonical dataset URLs
// (.../datasets/stanfordnlp/imdb and .../datasets/glue).
func parseDatasetURL(link string) (*Dataset, error) {
	parts, err := pathParts(link)
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 || parts[0] != "datasets" {
		return nil, fmt.Errorf("invalid Hugging Face dataset URL %q", link)
	}
	dataset := &Dataset{Link: link, Repo: parts[len(parts)-1]}
	if len(parts) >= 3 {
		dataset.Namespace = parts[1]
	}
	return dataset, nil
}

func parseGitHubURL(link string) (*Code, error) {
	parts, err := pathParts(link)
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid GitHub URL %q", link)
	}
	return &Code{Link: link, Owner: parts[0], Name: strings.TrimSuffix(parts[1], ".git")}, nil
}

func pathParts(link string) ([]string, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", link, err)
	}
	trimmed := strings.Trim(parsed.Path, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("invalid URL %q: empty path", link)
	}
	return strings.Split(trimmed, "/"), nil
}
