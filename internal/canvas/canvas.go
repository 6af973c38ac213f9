package canvas

import (
	"math/rand"

	"github.com/google/uuid"
)

// Direction z 序移动方向
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// 复制对象时的固定位移，保证副本在视觉上与原对象错开
const duplicateOffset = 20

// 新对象缺省落点的可见区间，避免连续添加时完全重叠
const (
	spawnMinX = 60
	spawnMaxX = 460
	spawnMinY = 60
	spawnMaxY = 300
)

// Canvas 一次编辑会话内全部画布对象的唯一持有者
// 所有结构性操作都经由 Canvas 方法完成，objects 的数组顺序即 z 序，
// 末尾元素绘制在最上层
type Canvas struct {
	objects  []*CanvasObject
	selected string
}

// New 创建空画布
func New() *Canvas {
	return &Canvas{}
}

// AddObject 创建对象并插入 z 序顶端
// 调用方未给出位置（X/Y 均为零值）时，在可见区间内随机落点
func (c *Canvas) AddObject(kind Kind, geom Geometry, style Style) *CanvasObject {
	if geom.X == 0 && geom.Y == 0 {
		geom.X = spawnMinX + rand.Float64()*(spawnMaxX-spawnMinX)
		geom.Y = spawnMinY + rand.Float64()*(spawnMaxY-spawnMinY)
	}

	obj := &CanvasObject{
		ID:       uuid.NewString(),
		Kind:     kind,
		Geometry: geom,
		Style:    style,
	}
	c.objects = append(c.objects, obj)
	return obj
}

// Insert 将已构造的对象（如占位符实例）插入 z 序顶端
// ID 为空时补一个新 ID
func (c *Canvas) Insert(obj *CanvasObject) *CanvasObject {
	if obj.ID == "" {
		obj.ID = uuid.NewString()
	}
	c.objects = append(c.objects, obj)
	return obj
}

// RemoveObject 删除对象，ID 不存在时静默返回
// 被删除对象是当前选中项时清空选中状态
func (c *Canvas) RemoveObject(id string) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.objects = append(c.objects[:idx], c.objects[idx+1:]...)
	if c.selected == id {
		c.selected = ""
	}
}

// DuplicateObject 复制对象：深拷贝几何/样式/元数据，坐标各偏移固定值，
// 分配新 ID 并成为当前选中项；源 ID 不存在时返回 nil
func (c *Canvas) DuplicateObject(id string) *CanvasObject {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}

	dup := c.objects[idx].Clone()
	dup.ID = uuid.NewString()
	dup.Geometry.X += duplicateOffset
	dup.Geometry.Y += duplicateOffset

	c.objects = append(c.objects, dup)
	c.selected = dup.ID
	return dup
}

// Reorder 将对象在 z 序中移动一步，已在边界时不动作
// 返回是否发生了移动
func (c *Canvas) Reorder(id string, dir Direction) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}

	switch dir {
	case Forward:
		if idx == len(c.objects)-1 {
			return false
		}
		c.objects[idx], c.objects[idx+1] = c.objects[idx+1], c.objects[idx]
	case Backward:
		if idx == 0 {
			return false
		}
		c.objects[idx], c.objects[idx-1] = c.objects[idx-1], c.objects[idx]
	default:
		return false
	}
	return true
}

// UpdateProperty 修改单个属性，值与当前值相同时跳过
// 返回是否实际发生了修改，调用方据此决定是否重绘
func (c *Canvas) UpdateProperty(id, name string, value any) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	obj := c.objects[idx]

	switch name {
	case "x":
		return setFloat(&obj.Geometry.X, value)
	case "y":
		return setFloat(&obj.Geometry.Y, value)
	case "width":
		return setFloat(&obj.Geometry.Width, value)
	case "height":
		return setFloat(&obj.Geometry.Height, value)
	case "radius":
		return setFloat(&obj.Geometry.Radius, value)
	case "x2":
		return setFloat(&obj.Geometry.X2, value)
	case "y2":
		return setFloat(&obj.Geometry.Y2, value)
	case "fill":
		return setString(&obj.Style.Fill, value)
	case "stroke":
		return setString(&obj.Style.Stroke, value)
	case "strokeWidth":
		return setFloat(&obj.Style.StrokeWidth, value)
	case "opacity":
		return setFloat(&obj.Style.Opacity, value)
	case "fontSize":
		return setFloat(&obj.Style.FontSize, value)
	case "fontFamily":
		return setString(&obj.Style.FontFamily, value)
	case "fontStyle":
		return setString(&obj.Style.FontStyle, value)
	case "text":
		return setString(&obj.Text, value)
	}
	return false
}

// Objects 按当前 z 序返回全部对象，渲染与序列化共用
func (c *Canvas) Objects() []*CanvasObject {
	out := make([]*CanvasObject, len(c.objects))
	copy(out, c.objects)
	return out
}

// Get 按 ID 查找对象，不存在时返回 nil
func (c *Canvas) Get(id string) *CanvasObject {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}
	return c.objects[idx]
}

// Select 设置当前选中项，ID 不存在时清空选中
func (c *Canvas) Select(id string) {
	if c.indexOf(id) < 0 {
		c.selected = ""
		return
	}
	c.selected = id
}

// Selected 当前选中对象的 ID，未选中时为空串
func (c *Canvas) Selected() string {
	return c.selected
}

// Len 对象数量
func (c *Canvas) Len() int {
	return len(c.objects)
}

func (c *Canvas) indexOf(id string) int {
	for i, obj := range c.objects {
		if obj.ID == id {
			return i
		}
	}
	return -1
}

// 调用方传入的值已经过 UI 层校验，这里只接受规范类型
func setFloat(dst *float64, value any) bool {
	var v float64
	switch n := value.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	default:
		return false
	}
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func setString(dst *string, value any) bool {
	v, ok := value.(string)
	if !ok || *dst == v {
		return false
	}
	*dst = v
	return true
}
