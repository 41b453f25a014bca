// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The OXYGEN SDK Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package xmlcodec provides the XML plumbing shared by every telegram
// exchanged between a plugin and the host application.
//
// Each telegram is a single XML document whose root element carries a
// protocol_version attribute in the "<major>.<minor>" format. Documents are
// built and parsed through a DOM (github.com/beevik/etree); this package adds
// the grammar rules common to all telegrams: root and version checking,
// capitalized boolean literals, and typed accessors for attributes and
// child elements that fail with wrapped sentinel errors.
package xmlcodec
