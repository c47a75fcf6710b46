package util

// RoomID 根据两个用户名生成确定性的房间键
// 两端各自计算都会得到同一个键：用户名排序后用 "-" 连接
func RoomID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + "-" + userB
}

// EdgeKey 无向好友边的规范键，与 RoomID 同构，用于全局好友图去重
func EdgeKey(usernameA, usernameB string) string {
	return RoomID(usernameA, usernameB)
}
