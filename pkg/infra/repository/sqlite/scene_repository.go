// 指示: miu200521358
// Package sqlite はシーンをSQLiteへ保存するリポジトリを提供する。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/mmath"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
)

// SceneSummary はシーン一覧の1行を表す。
type SceneSummary struct {
	ID          string
	Name        string
	ObjectCount int
	UpdatedAt   time.Time
}

// SceneRepository はシーンを保存・読み込みする。
type SceneRepository struct {
	db *sql.DB
}

// Open はSQLiteファイルを開き、スキーマを作成する。
func Open(dbPath string) (*SceneRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("リグライブラリのディレクトリを作成できません: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("リグライブラリを開けません: %w", err)
	}
	db.SetMaxOpenConns(1)

	repository := &SceneRepository{db: db}
	if err := repository.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("リグライブラリの初期化に失敗しました: %w", err)
	}
	return repository, nil
}

// Close はデータベースを閉じる。
func (r *SceneRepository) Close() error {
	return r.db.Close()
}

// migrate はテーブルを作成する。
func (r *SceneRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		active_name TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS objects (
		id TEXT PRIMARY KEY,
		scene_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		rot_x REAL NOT NULL, rot_y REAL NOT NULL, rot_z REAL NOT NULL, rot_w REAL NOT NULL,
		loc_x REAL NOT NULL, loc_y REAL NOT NULL, loc_z REAL NOT NULL,
		hidden INTEGER NOT NULL DEFAULT 0,
		selected INTEGER NOT NULL DEFAULT 0,
		mode TEXT NOT NULL,
		FOREIGN KEY (scene_id) REFERENCES scenes(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS bones (
		object_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		parent_name TEXT NOT NULL,
		head_x REAL NOT NULL, head_y REAL NOT NULL, head_z REAL NOT NULL,
		tail_x REAL NOT NULL, tail_y REAL NOT NULL, tail_z REAL NOT NULL,
		connected INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (object_id, position),
		FOREIGN KEY (object_id) REFERENCES objects(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS vertices (
		object_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL,
		PRIMARY KEY (object_id, position),
		FOREIGN KEY (object_id) REFERENCES objects(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS vertex_groups (
		object_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (object_id, position),
		FOREIGN KEY (object_id) REFERENCES objects(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS modifiers (
		object_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		target TEXT NOT NULL,
		PRIMARY KEY (object_id, position),
		FOREIGN KEY (object_id) REFERENCES objects(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_objects_scene ON objects(scene_id);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Save はシーンを丸ごと置き換えて保存する。
func (r *SceneRepository) Save(ctx context.Context, s *scene.Scene) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションを開始できません: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM scenes WHERE name = ?`, s.Name()); err != nil {
		return fmt.Errorf("既存シーンの削除に失敗しました: %w", err)
	}

	sceneID := uuid.NewString()
	activeName := ""
	if active := s.Active(); active != nil {
		activeName = active.Name()
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO scenes (id, name, active_name, updated_at) VALUES (?, ?, ?, ?)`,
		sceneID, s.Name(), activeName, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("シーンの保存に失敗しました: %w", err)
	}

	for i, object := range s.Objects() {
		if err = saveObject(ctx, tx, sceneID, i, object); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("シーンの確定に失敗しました: %w", err)
	}
	return nil
}

// saveObject はオブジェクトと付随データを保存する。
func saveObject(ctx context.Context, tx *sql.Tx, sceneID string, position int, object *scene.Object) error {
	objectID := uuid.NewString()
	rx, ry, rz, rw := object.Rotation().Values()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO objects (id, scene_id, position, name, type, rot_x, rot_y, rot_z, rot_w, loc_x, loc_y, loc_z, hidden, selected, mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		objectID, sceneID, position, object.Name(), string(object.Type()),
		rx, ry, rz, rw,
		object.Location.X, object.Location.Y, object.Location.Z,
		object.Hidden, object.Selected, string(object.Mode),
	); err != nil {
		return fmt.Errorf("オブジェクトの保存に失敗しました: %s: %w", object.Name(), err)
	}

	for i, bone := range object.Skeleton.Values() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bones (object_id, position, name, parent_name, head_x, head_y, head_z, tail_x, tail_y, tail_z, connected)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			objectID, i, bone.Name(), bone.ParentName(),
			bone.Head.X, bone.Head.Y, bone.Head.Z,
			bone.Tail.X, bone.Tail.Y, bone.Tail.Z,
			bone.Connected,
		); err != nil {
			return fmt.Errorf("ボーンの保存に失敗しました: %s: %w", bone.Name(), err)
		}
	}

	for i, v := range object.Vertices {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vertices (object_id, position, x, y, z) VALUES (?, ?, ?, ?, ?)`,
			objectID, i, v.X, v.Y, v.Z,
		); err != nil {
			return fmt.Errorf("頂点の保存に失敗しました: %s: %w", object.Name(), err)
		}
	}

	for i, name := range object.VertexGroups() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vertex_groups (object_id, position, name) VALUES (?, ?, ?)`,
			objectID, i, name,
		); err != nil {
			return fmt.Errorf("頂点グループの保存に失敗しました: %s: %w", name, err)
		}
	}

	for i, modifier := range object.Modifiers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO modifiers (object_id, position, name, type, target) VALUES (?, ?, ?, ?, ?)`,
			objectID, i, modifier.Name, modifier.Type, modifier.Object,
		); err != nil {
			return fmt.Errorf("モディファイアの保存に失敗しました: %s: %w", modifier.Name, err)
		}
	}
	return nil
}

// Load はシーンを読み込む。存在しない場合はObjectNotFoundエラーを返す。
func (r *SceneRepository) Load(ctx context.Context, name string) (*scene.Scene, error) {
	var sceneID, activeName string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, active_name FROM scenes WHERE name = ?`, name,
	).Scan(&sceneID, &activeName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, merrors.NewObjectNotFoundError(name)
	}
	if err != nil {
		return nil, fmt.Errorf("シーンの読み込みに失敗しました: %w", err)
	}

	s := scene.NewScene(name)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, rot_x, rot_y, rot_z, rot_w, loc_x, loc_y, loc_z, hidden, selected, mode
		FROM objects WHERE scene_id = ? ORDER BY position`, sceneID)
	if err != nil {
		return nil, fmt.Errorf("オブジェクトの読み込みに失敗しました: %w", err)
	}

	type objectRow struct {
		id     string
		object *scene.Object
	}
	objectRows := make([]objectRow, 0)
	for rows.Next() {
		var (
			id, objectName, objectType, mode string
			rx, ry, rz, rw, lx, ly, lz       float64
			hidden, selected                 bool
		)
		if err := rows.Scan(&id, &objectName, &objectType, &rx, &ry, &rz, &rw, &lx, &ly, &lz, &hidden, &selected, &mode); err != nil {
			rows.Close()
			return nil, fmt.Errorf("オブジェクトの読み込みに失敗しました: %w", err)
		}
		object := scene.RestoreObject(objectName, scene.ObjectType(objectType), mmath.NewQuaternionByValues(rx, ry, rz, rw), nil)
		object.Location = mmath.NewVec3(lx, ly, lz)
		object.Hidden = hidden
		object.Selected = selected
		object.Mode = scene.Mode(mode)
		objectRows = append(objectRows, objectRow{id: id, object: object})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("オブジェクトの読み込みに失敗しました: %w", err)
	}
	rows.Close()

	for _, row := range objectRows {
		if err := r.loadObjectDetails(ctx, row.id, row.object); err != nil {
			return nil, err
		}
		s.Link(row.object)
	}
	if activeName != "" {
		if err := s.SetActive(activeName); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadOrCreate はシーンを読み込み、存在しない場合は空のシーンを返す。
func (r *SceneRepository) LoadOrCreate(ctx context.Context, name string) (*scene.Scene, error) {
	s, err := r.Load(ctx, name)
	if merrors.ExtractErrorID(err) == merrors.ObjectNotFoundErrorID {
		return scene.NewScene(name), nil
	}
	return s, err
}

// loadObjectDetails はボーン・頂点・頂点グループ・モディファイアを読み込む。
func (r *SceneRepository) loadObjectDetails(ctx context.Context, objectID string, object *scene.Object) error {
	if object.IsArmature() {
		skeleton, err := r.loadSkeleton(ctx, objectID)
		if err != nil {
			return fmt.Errorf("ボーンの読み込みに失敗しました: %s: %w", object.Name(), err)
		}
		object.Skeleton = skeleton
	}

	vertexRows, err := r.db.QueryContext(ctx,
		`SELECT x, y, z FROM vertices WHERE object_id = ? ORDER BY position`, objectID)
	if err != nil {
		return fmt.Errorf("頂点の読み込みに失敗しました: %w", err)
	}
	defer vertexRows.Close()
	for vertexRows.Next() {
		var x, y, z float64
		if err := vertexRows.Scan(&x, &y, &z); err != nil {
			return fmt.Errorf("頂点の読み込みに失敗しました: %w", err)
		}
		object.Vertices = append(object.Vertices, mmath.NewVec3(x, y, z))
	}
	if err := vertexRows.Err(); err != nil {
		return fmt.Errorf("頂点の読み込みに失敗しました: %w", err)
	}

	groupRows, err := r.db.QueryContext(ctx,
		`SELECT name FROM vertex_groups WHERE object_id = ? ORDER BY position`, objectID)
	if err != nil {
		return fmt.Errorf("頂点グループの読み込みに失敗しました: %w", err)
	}
	defer groupRows.Close()
	for groupRows.Next() {
		var name string
		if err := groupRows.Scan(&name); err != nil {
			return fmt.Errorf("頂点グループの読み込みに失敗しました: %w", err)
		}
		object.AddVertexGroup(name)
	}
	if err := groupRows.Err(); err != nil {
		return fmt.Errorf("頂点グループの読み込みに失敗しました: %w", err)
	}

	modifierRows, err := r.db.QueryContext(ctx,
		`SELECT name, type, target FROM modifiers WHERE object_id = ? ORDER BY position`, objectID)
	if err != nil {
		return fmt.Errorf("モディファイアの読み込みに失敗しました: %w", err)
	}
	defer modifierRows.Close()
	for modifierRows.Next() {
		var modifier scene.Modifier
		if err := modifierRows.Scan(&modifier.Name, &modifier.Type, &modifier.Object); err != nil {
			return fmt.Errorf("モディファイアの読み込みに失敗しました: %w", err)
		}
		object.Modifiers = append(object.Modifiers, modifier)
	}
	return modifierRows.Err()
}

// loadSkeleton は保存順にボーンを読み込んで階層を復元する。
func (r *SceneRepository) loadSkeleton(ctx context.Context, objectID string) (*model.Skeleton, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, parent_name, head_x, head_y, head_z, tail_x, tail_y, tail_z, connected
		FROM bones WHERE object_id = ? ORDER BY position`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skeleton := model.NewSkeleton()
	for rows.Next() {
		var (
			name, parentName       string
			hx, hy, hz, tx, ty, tz float64
			connected              bool
		)
		if err := rows.Scan(&name, &parentName, &hx, &hy, &hz, &tx, &ty, &tz, &connected); err != nil {
			return nil, err
		}
		bone := model.NewBone(name, mmath.NewVec3(hx, hy, hz))
		bone.Tail = mmath.NewVec3(tx, ty, tz)
		bone.Connected = connected
		if err := skeleton.Append(bone, parentName); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skeleton, nil
}

// List は保存済みシーンの一覧を名前順で返す。
func (r *SceneRepository) List(ctx context.Context) ([]SceneSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.updated_at, COUNT(o.id)
		FROM scenes s LEFT JOIN objects o ON o.scene_id = s.id
		GROUP BY s.id, s.name, s.updated_at
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("シーン一覧の読み込みに失敗しました: %w", err)
	}
	defer rows.Close()

	summaries := make([]SceneSummary, 0)
	for rows.Next() {
		var (
			summary   SceneSummary
			updatedAt string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &updatedAt, &summary.ObjectCount); err != nil {
			return nil, fmt.Errorf("シーン一覧の読み込みに失敗しました: %w", err)
		}
		if summary.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return nil, fmt.Errorf("更新日時の解析に失敗しました: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("シーン一覧の読み込みに失敗しました: %w", err)
	}
	return summaries, nil
}

// Delete はシーンを削除する。
func (r *SceneRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("シーンの削除に失敗しました: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("シーンの削除に失敗しました: %w", err)
	}
	if affected == 0 {
		return merrors.NewObjectNotFoundError(name)
	}
	return nil
}
