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

package coded_test

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"

	"github.com/tomoncle/coded"
	"github.com/tomoncle/coded/database"
	"github.com/tomoncle/coded/enum"
	"github.com/tomoncle/coded/types"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int64          `bun:"id,pk,autoincrement"`
	Username string         `bun:"username,notnull"`
	GenderCd *int64         `bun:"gender_cd"`
	RoleCd   types.NullCode `bun:"role_cd,type:integer"`
}

var _ bun.BeforeAppendModelHook = (*User)(nil)

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	return coded.Validate(u)
}

var (
	genderEnum = coded.MustDeclare[User]("gender", []string{"male", "female"})
	roleEnum   = coded.MustDeclare[User]("role",
		enum.Pairs(enum.M("admin", 1), enum.M("member", 2)),
		coded.Prefix())
)

func TestDeclareAndLookup(t *testing.T) {
	decl, err := coded.Lookup[User]("gender")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if decl != genderEnum {
		t.Error("Lookup returned a different declaration")
	}
	if decl.Policy().StorageField != "gender_cd" {
		t.Errorf("storage field = %s", decl.Policy().StorageField)
	}
	if _, err := coded.Lookup[User]("missing"); !errors.Is(err, enum.ErrNotDeclared) {
		t.Fatalf("expected ErrNotDeclared, got %v", err)
	}
}

func TestDeclareConflict(t *testing.T) {
	_, err := coded.Declare[User]("gender", []string{"again"})
	if !errors.Is(err, enum.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFieldBinder(t *testing.T) {
	u := &User{Username: "alice"}
	field, err := coded.Field(u, "gender")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if got := genderEnum.Get(field); got != "" {
		t.Errorf("unset getter = %q", got)
	}
	if err := genderEnum.Set(field, "female"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if u.GenderCd == nil || *u.GenderCd != 1 {
		t.Fatalf("gender_cd = %v, want 1", u.GenderCd)
	}
	if !genderEnum.Is(field, "female") {
		t.Error("Is(female) = false")
	}

	roleField, err := coded.Field(u, "role")
	if err != nil {
		t.Fatalf("Field(role): %v", err)
	}
	if _, err := roleEnum.Bang(roleField, "admin"); err != nil {
		t.Fatalf("Bang: %v", err)
	}
	if u.RoleCd.RawValue() != int64(1) {
		t.Errorf("role_cd = %v, want 1", u.RoleCd.RawValue())
	}
	pred, ok := roleEnum.Accessors().Predicate("role_admin")
	if !ok {
		t.Fatal("missing prefixed predicate role_admin")
	}
	if !pred(roleField) {
		t.Error("role_admin predicate = false")
	}
}

func TestValidate(t *testing.T) {
	u := &User{Username: "bob"}
	if err := coded.Validate(u); err != nil {
		t.Fatalf("unset columns should pass: %v", err)
	}
	u.RoleCd.SetRawValue(int64(99))
	err := coded.Validate(u)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var fieldErr *coded.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Attribute != "role" {
		t.Errorf("failing attribute = %s", fieldErr.Attribute)
	}
	u.RoleCd.SetRawValue(int64(2))
	if err := coded.Validate(u); err != nil {
		t.Fatalf("valid code rejected: %v", err)
	}
}

func TestDatabaseRoundTrip(t *testing.T) {
	db, err := database.InitDB(&database.Config{
		Connection: database.ConnectionConfig{
			Type:   "sqlite",
			DBName: "file::memory:?cache=shared",
		},
	})
	if err != nil {
		t.Fatalf("init database error: %v", err)
	}
	defer func() { _ = database.CloseDB() }()

	ctx := context.Background()
	if _, err := db.NewCreateTable().Model((*User)(nil)).Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	u := &User{Username: "carol"}
	field, err := coded.Field(u, "gender")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if err := genderEnum.Set(field, "male"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	u.RoleCd.SetRawValue(int64(1))
	if _, err := db.NewInsert().Model(u).Exec(ctx); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// The BeforeAppendModel hook rejects rows holding undeclared codes.
	bad := &User{Username: "mallory"}
	bad.RoleCd.SetRawValue(int64(42))
	if _, err := db.NewInsert().Model(bad).Exec(ctx); err == nil {
		t.Fatal("insert with invalid role code should fail validation")
	}

	var admins []*User
	q, err := coded.Where(db.NewSelect().Model(&admins), roleEnum, "admin")
	if err != nil {
		t.Fatalf("Where: %v", err)
	}
	if err := q.Scan(ctx); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(admins) != 1 || admins[0].Username != "carol" {
		t.Fatalf("admins = %v", admins)
	}
	loaded, err := coded.Field(admins[0], "gender")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	if got := genderEnum.Get(loaded); got != "male" {
		t.Errorf("gender after reload = %q, want male", got)
	}
}
