// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watchFile calls changed each time that the given file is written
// or created, until done is closed or the watcher fails. Errors
// returned by changed are logged and do not stop the watch.
func watchFile(filename string, changed func() error, done <-chan struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// the directory is watched to see files that editors replace on save
	dir := filepath.Dir(filename)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(filename)
	slog.Info("watching parameters", "file", filename)
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Info("parameters changed", "file", ev.Name, "op", ev.Op.String())
			errors.Log(changed())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching parameters", "err", err)
		}
	}
}
