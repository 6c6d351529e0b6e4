package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testMotionComponent struct {
	Speed float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 live entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 300})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 300 {
		t.Errorf("Component data mismatch, expected (100, 300), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testMotionComponent{Speed: 8})

	motion, ok := GetComponent[*testMotionComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	motion.Speed += 1

	again, _ := GetComponent[*testMotionComponent](em, id)
	if again.Speed != 9 {
		t.Errorf("components are stored by pointer, expected speed 9, got %f", again.Speed)
	}

	if !HasComponent[*testMotionComponent](em, id) {
		t.Error("HasComponent should report the motion component")
	}

	RemoveComponent[*testMotionComponent](em, id)
	if _, ok := GetComponent[*testMotionComponent](em, id); ok {
		t.Error("component should be gone after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Components should be removed with the entity")
	}
}

func TestGetEntitiesWithKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 6)
	for i := 0; i < 6; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testMotionComponent{})
		}
		ids = append(ids, id)
	}

	// 删除中间的实体后，顺序仍然保持
	em.DestroyEntity(ids[2])
	em.RemoveMarkedEntities()

	got := GetEntitiesWith2[*testPositionComponent, *testMotionComponent](em)
	want := []EntityID{ids[0], ids[4]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetEntitiesWith2 = %v, want %v", got, want)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	wantAll := []EntityID{ids[0], ids[1], ids[3], ids[4], ids[5]}
	if !reflect.DeepEqual(all, wantAll) {
		t.Errorf("GetEntitiesWith1 = %v, want %v", all, wantAll)
	}

	// 新实体追加在末尾
	late := em.CreateEntity()
	em.AddComponent(late, &testPositionComponent{})
	all = GetEntitiesWith1[*testPositionComponent](em)
	if all[len(all)-1] != late {
		t.Errorf("newest entity should be last, got %v", all)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.Exists(id1) || em.Exists(id3) {
		t.Error("id1 and id3 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 live entity, got %d", em.EntityCount())
	}

	// 重复清理不应出错
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 live entity after second cleanup, got %d", em.EntityCount())
	}
}
