/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "pathresolv")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func TestResolveFileAbsolute(t *testing.T) {
	dir := tempDir(t)
	file := filepath.Join(dir, "config.toml")
	assert.NoError(t, ioutil.WriteFile(file, []byte(""), 0644))

	resolved, err := ResolveFile(file)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir := tempDir(t)
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	assert.NoError(t, os.Chdir(dir))
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0644))

	resolved, err := ResolveFile("./config.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "config.toml")), resolved)
}

func TestResolveFileNotFound(t *testing.T) {
	_, err := ResolveFile("./does-not-exist.toml")
	assert.Error(t, err)
}

func TestResolveFolderNotFound(t *testing.T) {
	_, err := ResolveFolder("./no-such-folder")
	assert.Error(t, err)
}

func TestResolveCreateFolderCreatesInWorkingDirectory(t *testing.T) {
	dir := tempDir(t)
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	assert.NoError(t, os.Chdir(dir))

	resolved, err := ResolveCreateFolder("./logs")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "logs")), resolved)
	assert.True(t, folderExists(resolved))
}

func TestFileExistsAndFolderExists(t *testing.T) {
	dir := tempDir(t)
	file := filepath.Join(dir, "a.txt")
	assert.NoError(t, ioutil.WriteFile(file, []byte(""), 0644))

	assert.True(t, fileExists(file))
	assert.False(t, fileExists(dir))
	assert.True(t, folderExists(dir))
	assert.False(t, folderExists(file))
}
