// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
//
// Four entities are owned by four independent services, namely the
// Car, Component, Driver, and Race. Entities refer to each other only
// by their numeric IDs (weak references), so a referenced entity may
// live in another process and may vanish at any time. The CarView,
// ComponentView, DriverView, and RaceView types are read-only
// projections which are assembled by dereferencing those IDs.
//
// Models carry no serialization tags. The adapter layer defines its
// own DTO and table structs and maps them from/to these models.
package model
