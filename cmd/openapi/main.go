/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command openapi aggregates per-feature OpenAPI fragments into a single
// document: the fragments' paths and component schemas are merged into a
// base template, and duplicate keys fail the run so collisions surface in
// CI instead of silently shadowing each other.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

type document = map[string]interface{}

func main() {
	basePath := flag.String("base", "api/openapi/base.yaml", "base OpenAPI template")
	fragmentGlob := flag.String("fragments", "api/openapi/paths/*.yaml", "glob of fragment files to merge")
	outPath := flag.String("out", "api/openapi/openapi.yaml", "merged output file")
	flag.Parse()

	if err := run(*basePath, *fragmentGlob, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "openapi: %v\n", err)
		os.Exit(1)
	}
}

func run(basePath, fragmentGlob, outPath string) error {
	base, err := loadDocument(basePath)
	if err != nil {
		return err
	}

	fragments, err := filepath.Glob(fragmentGlob)
	if err != nil {
		return fmt.Errorf("invalid fragment glob %q: %w", fragmentGlob, err)
	}
	if len(fragments) == 0 {
		return fmt.Errorf("no fragments matched %q", fragmentGlob)
	}
	sort.Strings(fragments)

	for _, path := range fragments {
		fragment, err := loadDocument(path)
		if err != nil {
			return err
		}
		if err := mergeSection(base, fragment, path, "paths"); err != nil {
			return err
		}
		if err := mergeComponents(base, fragment, path); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(base)
	if err != nil {
		return fmt.Errorf("failed to serialize merged document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("merged %d fragments into %s\n", len(fragments), outPath)
	return nil
}

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// mergeSection copies every key of the fragment's named top-level mapping
// into the base, rejecting keys the base already has.
func mergeSection(base, fragment document, fragmentPath, section string) error {
	src, ok := asMapping(fragment[section])
	if !ok {
		return nil
	}
	dst, ok := asMapping(base[section])
	if !ok {
		dst = document{}
		base[section] = dst
	}

	for key, value := range src {
		if _, exists := dst[key]; exists {
			return fmt.Errorf("%s: duplicate %s key %q", fragmentPath, section, key)
		}
		dst[key] = value
	}
	return nil
}

// mergeComponents merges the fragment's components/schemas mapping.
func mergeComponents(base, fragment document, fragmentPath string) error {
	srcComponents, ok := asMapping(fragment["components"])
	if !ok {
		return nil
	}
	dstComponents, ok := asMapping(base["components"])
	if !ok {
		dstComponents = document{}
		base["components"] = dstComponents
	}
	return mergeSection(dstComponents, srcComponents, fragmentPath, "schemas")
}

// asMapping normalizes YAML mappings, which decode as map[string]interface{}
// at the top level but may appear as map[interface{}]interface{} when nested.
func asMapping(value interface{}) (document, bool) {
	switch m := value.(type) {
	case document:
		return m, true
	case map[interface{}]interface{}:
		normalized := document{}
		for key, val := range m {
			normalized[fmt.Sprint(key)] = val
		}
		return normalized, true
	default:
		return nil, false
	}
}
