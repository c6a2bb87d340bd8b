package engine

// Factory constructs the behavior for a resource label. The factory
// table replaces runtime resource discovery: the content package
// registers every spawnable label at startup
type Factory func(g *Game) Behavior

// Registry owns all active objects and the resource factory table.
// Object iteration follows spawn order
type Registry struct {
	nextID    ID
	objects   map[ID]*Object
	order     []ID
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		nextID:    1,
		objects:   make(map[ID]*Object),
		factories: make(map[string]Factory),
	}
}

// RegisterFactory binds a resource label to a behavior factory
func (r *Registry) RegisterFactory(label string, f Factory) {
	r.factories[label] = f
}

// Factory returns the factory for a label, if registered
func (r *Registry) Factory(label string) (Factory, bool) {
	f, ok := r.factories[label]
	return f, ok
}

// create instantiates an object with the next monotonic ID and inserts
// it into the registry
func (r *Registry) create(g *Game, label string, behavior Behavior, parent *Object) *Object {
	obj := &Object{
		id:       r.nextID,
		Label:    label,
		Parent:   parent,
		Behavior: behavior,
		game:     g,
	}
	r.nextID++
	r.objects[obj.id] = obj
	r.order = append(r.order, obj.id)
	return obj
}

// remove deletes an object from the registry. No-op if absent
func (r *Registry) remove(id ID) {
	if _, ok := r.objects[id]; !ok {
		return
	}
	delete(r.objects, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the object with the given id
func (r *Registry) Get(id ID) (*Object, bool) {
	obj, ok := r.objects[id]
	return obj, ok
}

// Len returns the number of active objects
func (r *Registry) Len() int {
	return len(r.objects)
}

// Each calls fn for every active object in spawn order. The iteration
// snapshot is taken up front so fn may spawn or destroy objects;
// objects destroyed mid-iteration are skipped, objects spawned
// mid-iteration are not visited until the next pass
func (r *Registry) Each(fn func(obj *Object)) {
	ids := make([]ID, len(r.order))
	copy(ids, r.order)
	for _, id := range ids {
		if obj, ok := r.objects[id]; ok {
			fn(obj)
		}
	}
}

// FindByLabel returns all active objects with the given label, in
// spawn order
func (r *Registry) FindByLabel(label string) []*Object {
	var found []*Object
	for _, id := range r.order {
		if obj := r.objects[id]; obj != nil && obj.Label == label {
			found = append(found, obj)
		}
	}
	return found
}
